package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	calc "github.com/lexecon/lost-earnings-calculator/internal/calculation"
	"github.com/lexecon/lost-earnings-calculator/pkg/dateutil"
)

// Prints the report-year past/future split for a set of report dates so the
// boundary arithmetic can be eyeballed against hand calculations.
func main() {
	dates := []string{"2025-06-01", "2024-06-01", "2024-12-31", "2025-01-01"}
	if len(os.Args) > 1 {
		dates = os.Args[1:]
	}

	fmt.Println("Date,DaysInYear,PastDays,PastFraction,FutureFraction,Sum")
	for _, arg := range dates {
		d, err := time.Parse("2006-01-02", arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad date %q: %v\n", arg, err)
			continue
		}
		past, future := calc.SplitReportYear(d)
		sum := past.Add(future)
		fmt.Printf("%s,%d,%d,%s,%s,%s\n",
			arg,
			dateutil.DaysInYear(d.Year()),
			d.YearDay(),
			past.StringFixed(6),
			future.StringFixed(6),
			sum.StringFixed(6))
		if !sum.Equal(decimal.NewFromInt(1)) {
			fmt.Fprintf(os.Stderr, "WARNING: fractions for %s do not sum to 1\n", arg)
		}
	}
}
