// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pdiddy/calckit/internal/calc"
	"github.com/pdiddy/calckit/internal/units"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Everyday calculators (age, dates, health, loans, percentages, trig)",
	Long: `Calc groups the closed-form calculators. Each subcommand validates its
inputs, computes a result record, and prints it as text, JSON, or YAML.
Dates are YYYY-MM-DD.`,
}

// printer groups thousands in money and calorie figures.
var printer = message.NewPrinter(language.English)

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must be YYYY-MM-DD", s)
	}
	return t, nil
}

func parseNumbers(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := units.Parse(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// --- age ---

var calcAgeCmd = &cobra.Command{
	Use:   "age <birth-date>",
	Short: "Age in years, months, and days, with totals and the next birthday",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		birth, err := parseDate(args[0])
		if err != nil {
			return err
		}
		on := time.Now()
		if s, _ := cmd.Flags().GetString("on"); s != "" {
			if on, err = parseDate(s); err != nil {
				return err
			}
		}
		res, err := calc.Age(birth, on)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if ok, err := writeStructured(w, outputFormat(cmd), res); ok {
			return err
		}
		fmt.Fprintf(w, "Age:           %d years, %d months, %d days\n", res.Years, res.Months, res.Days)
		printer.Fprintf(w, "Total months:  %d\n", res.TotalMonths)
		printer.Fprintf(w, "Total weeks:   %d\n", res.TotalWeeks)
		printer.Fprintf(w, "Total days:    %d\n", res.TotalDays)
		fmt.Fprintf(w, "Next birthday: %s (in %d days)\n", res.NextDate.Format("Mon 2 Jan 2006"), res.NextBirthday)
		return nil
	},
}

// --- date difference and arithmetic ---

var calcDateCmd = &cobra.Command{
	Use:   "date <from> <to>",
	Short: "Difference between two dates",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parseDate(args[0])
		if err != nil {
			return err
		}
		to, err := parseDate(args[1])
		if err != nil {
			return err
		}
		res := calc.DateDiff(from, to)
		w := cmd.OutOrStdout()
		if ok, err := writeStructured(w, outputFormat(cmd), res); ok {
			return err
		}
		sign := ""
		if res.Negative {
			sign = "-"
		}
		fmt.Fprintf(w, "Difference: %s%d years, %d months, %d days\n", sign, res.Years, res.Months, res.Days)
		printer.Fprintf(w, "Total days: %d (%d weeks, %d weekdays)\n", res.TotalDays, res.Weeks, res.Weekdays)
		return nil
	},
}

var calcDateAddCmd = &cobra.Command{
	Use:   "date-add <start>",
	Short: "Add or subtract years, months, and days from a date",
	Long: `Date-add shifts a date by years, months, and days. Month arithmetic
clamps to the end of the month, so 2024-01-31 plus one month is 2024-02-29.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseDate(args[0])
		if err != nil {
			return err
		}
		years, _ := cmd.Flags().GetInt("years")
		months, _ := cmd.Flags().GetInt("months")
		days, _ := cmd.Flags().GetInt("days")
		subtract, _ := cmd.Flags().GetBool("subtract")

		d := calc.AddToDate(start, years, months, days, subtract)
		w := cmd.OutOrStdout()
		res := map[string]string{"date": d.Format(time.DateOnly), "weekday": d.Weekday().String()}
		if ok, err := writeStructured(w, outputFormat(cmd), res); ok {
			return err
		}
		fmt.Fprintf(w, "%s (%s)\n", res["date"], res["weekday"])
		return nil
	},
}

// --- health ---

var calcBMICmd = &cobra.Command{
	Use:   "bmi",
	Short: "Body mass index and the healthy weight range",
	Long: `BMI computes weight / height² from metric flags (--height cm, --weight kg)
or, with --imperial, from --feet, --inches, and --pounds.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			res calc.BMIResult
			err error
		)
		if imperial, _ := cmd.Flags().GetBool("imperial"); imperial {
			feet, _ := cmd.Flags().GetFloat64("feet")
			inches, _ := cmd.Flags().GetFloat64("inches")
			pounds, _ := cmd.Flags().GetFloat64("pounds")
			res, err = calc.BMIImperial(feet, inches, pounds)
		} else {
			height, _ := cmd.Flags().GetFloat64("height")
			weight, _ := cmd.Flags().GetFloat64("weight")
			res, err = calc.BMI(height, weight)
		}
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if ok, err := writeStructured(w, outputFormat(cmd), res); ok {
			return err
		}
		fmt.Fprintf(w, "BMI: %.1f (%s)\n", res.BMI, res.Category)
		fmt.Fprintf(w, "Healthy weight for %.1f cm: %.1f - %.1f kg\n", res.HeightCm, res.MinHealthy, res.MaxHealthy)
		return nil
	},
}

func addBodyFlags(cmd *cobra.Command) {
	cmd.Flags().String("sex", "", "male or female")
	cmd.Flags().Float64("weight", 0, "weight in kg")
	cmd.Flags().Float64("height", 0, "height in cm")
	cmd.Flags().Float64("age", 0, "age in years")
	cmd.Flags().String("formula", string(calc.MifflinStJeor), "mifflin-st-jeor, harris-benedict, or katch-mcardle")
	cmd.Flags().Float64("body-fat", 0, "body fat percent (katch-mcardle)")
}

func bodyInput(cmd *cobra.Command) calc.BMRInput {
	sex, _ := cmd.Flags().GetString("sex")
	weight, _ := cmd.Flags().GetFloat64("weight")
	height, _ := cmd.Flags().GetFloat64("height")
	age, _ := cmd.Flags().GetFloat64("age")
	formula, _ := cmd.Flags().GetString("formula")
	bodyFat, _ := cmd.Flags().GetFloat64("body-fat")
	return calc.BMRInput{
		Sex:            calc.Sex(strings.ToLower(sex)),
		WeightKg:       weight,
		HeightCm:       height,
		AgeYears:       age,
		Formula:        calc.BMRFormula(formula),
		BodyFatPercent: bodyFat,
	}
}

var calcBMRCmd = &cobra.Command{
	Use:   "bmr",
	Short: "Basal metabolic rate in kcal/day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bmr, err := calc.BMR(bodyInput(cmd))
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if ok, err := writeStructured(w, outputFormat(cmd), map[string]float64{"bmr": bmr}); ok {
			return err
		}
		printer.Fprintf(w, "BMR: %.0f kcal/day\n", bmr)
		return nil
	},
}

var calcCaloriesCmd = &cobra.Command{
	Use:   "calories",
	Short: "Daily calorie needs by activity level and goal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		activity, _ := cmd.Flags().GetString("activity")
		res, err := calc.Calories(bodyInput(cmd), calc.Activity(activity))
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if ok, err := writeStructured(w, outputFormat(cmd), res); ok {
			return err
		}
		printer.Fprintf(w, "BMR:  %.0f kcal/day\n", res.BMR)
		printer.Fprintf(w, "TDEE: %.0f kcal/day\n\n", res.TDEE)
		for _, g := range res.Goals {
			printer.Fprintf(w, "%-14s  %+6.0f  %8.0f kcal/day\n", g.Name, g.Delta, g.Calories)
		}
		return nil
	},
}

// --- money and maths ---

var calcLoanCmd = &cobra.Command{
	Use:   "loan <principal> <annual-rate-percent> <months>",
	Short: "Monthly payment, totals, and amortization schedule",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseNumbers(args[:2])
		if err != nil {
			return err
		}
		months, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("months %q must be a whole number", args[2])
		}
		res, err := calc.Loan(nums[0], nums[1], months)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if ok, err := writeStructured(w, outputFormat(cmd), res); ok {
			return err
		}
		printer.Fprintf(w, "Monthly payment: %.2f\n", res.MonthlyPayment)
		printer.Fprintf(w, "Total payment:   %.2f\n", res.TotalPayment)
		printer.Fprintf(w, "Total interest:  %.2f\n", res.TotalInterest)

		if schedule, _ := cmd.Flags().GetBool("schedule"); schedule {
			fmt.Fprintf(w, "\n%5s  %12s  %12s  %12s  %14s\n", "Month", "Payment", "Principal", "Interest", "Balance")
			fmt.Fprintln(w, strings.Repeat("-", 63))
			for _, in := range res.Schedule {
				printer.Fprintf(w, "%5d  %12.2f  %12.2f  %12.2f  %14.2f\n",
					in.Month, in.Payment, in.Principal, in.Interest, in.Balance)
			}
		}
		return nil
	},
}

var calcPercentCmd = &cobra.Command{
	Use:   "percent <of|what|change|apply> <a> <b>",
	Short: "Percentage calculations",
	Long: `Percent runs one of four percentage calculations:

  of      a% of b                 calckit calc percent of 15 80
  what    a is what % of b        calckit calc percent what 12 80
  change  % change from a to b    calckit calc percent change 80 92
  apply   b% applied to a         calckit calc percent apply -- 80 -15

Negative numbers must follow "--" so they are not read as flags.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseNumbers(args[1:])
		if err != nil {
			return err
		}
		v, err := calc.Percentage(calc.PercentOp(args[0]), nums[0], nums[1])
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if ok, err := writeStructured(w, outputFormat(cmd), map[string]float64{"result": v}); ok {
			return err
		}
		suffix := ""
		if op := calc.PercentOp(args[0]); op == calc.OpWhatPercent || op == calc.OpChange {
			suffix = "%"
		}
		fmt.Fprintf(w, "%s%s\n", units.Format(v, precision()), suffix)
		return nil
	},
}

var calcTrigCmd = &cobra.Command{
	Use:   "trig <function> <value>",
	Short: "Trigonometric functions (sin cos tan csc sec cot asin acos atan)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseNumbers(args[1:])
		if err != nil {
			return err
		}
		unit, _ := cmd.Flags().GetString("unit")
		v, err := calc.Evaluate(calc.TrigFunc(args[0]), nums[0], calc.AngleUnit(unit))
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if ok, err := writeStructured(w, outputFormat(cmd), map[string]float64{"result": v}); ok {
			return err
		}
		fmt.Fprintln(w, units.Format(v, precision()))
		return nil
	},
}

func init() {
	calcAgeCmd.Flags().String("on", "", "compute the age on this date instead of today")

	calcDateAddCmd.Flags().Int("years", 0, "years to add")
	calcDateAddCmd.Flags().Int("months", 0, "months to add")
	calcDateAddCmd.Flags().Int("days", 0, "days to add")
	calcDateAddCmd.Flags().Bool("subtract", false, "subtract instead of add")

	calcBMICmd.Flags().Float64("height", 0, "height in cm")
	calcBMICmd.Flags().Float64("weight", 0, "weight in kg")
	calcBMICmd.Flags().Bool("imperial", false, "use --feet, --inches, and --pounds")
	calcBMICmd.Flags().Float64("feet", 0, "height, feet part")
	calcBMICmd.Flags().Float64("inches", 0, "height, inches part")
	calcBMICmd.Flags().Float64("pounds", 0, "weight in pounds")

	addBodyFlags(calcBMRCmd)
	addBodyFlags(calcCaloriesCmd)
	calcCaloriesCmd.Flags().String("activity", string(calc.Sedentary), "sedentary, light, moderate, active, or very-active")

	calcLoanCmd.Flags().Bool("schedule", false, "print the amortization schedule")

	calcTrigCmd.Flags().String("unit", string(calc.Degrees), "angle unit: degree or radian")

	for _, c := range []*cobra.Command{
		calcAgeCmd, calcDateCmd, calcDateAddCmd, calcBMICmd, calcBMRCmd,
		calcCaloriesCmd, calcLoanCmd, calcPercentCmd, calcTrigCmd,
	} {
		addOutputFlag(c)
		calcCmd.AddCommand(c)
	}
	rootCmd.AddCommand(calcCmd)
}
