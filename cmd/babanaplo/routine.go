package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/babanaplo/babanaplo/internal/models"
)

var routineDate string

var routineCmd = &cobra.Command{
	Use:   "routine <baby-id>",
	Short: "Show a baby's routine for a date alongside the default template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var babyID int64
		if _, err := fmt.Sscanf(args[0], "%d", &babyID); err != nil {
			return fmt.Errorf("érvénytelen baba azonosító: %s", args[0])
		}

		date := time.Now()
		if routineDate != "" {
			parsed, err := time.Parse("2006-01-02", routineDate)
			if err != nil {
				return fmt.Errorf("a dátum formátuma ÉÉÉÉ-HH-NN")
			}
			date = parsed
		}

		if err := babyStore.LoadBaby(cmd.Context(), babyID); err != nil {
			return fmt.Errorf("%s", babyStore.Err())
		}

		// A partial failure still prints whatever loaded.
		if err := routineStore.LoadAll(cmd.Context(), date); err != nil {
			log.WithError(err).Warn("nem minden rutin töltődött be")
		}

		printRoutine("Napi rutin", routineStore.DailyRoutine())
		printRoutine("Alapértelmezett rutin", routineStore.DefaultRoutine())
		return nil
	},
}

func printRoutine(label string, r *models.DailyRoutine) {
	if r == nil {
		fmt.Printf("%s: nincs adat\n", label)
		return
	}
	fmt.Printf("%s (%s):\n", label, r.Date.Format("2006-01-02"))
	if r.WakeUpTime != nil {
		fmt.Printf("  ébredés:  %s\n", *r.WakeUpTime)
	}
	if r.BedTime != nil {
		fmt.Printf("  lefekvés: %s\n", *r.BedTime)
	}
	if r.NapCount != nil {
		fmt.Printf("  alvások:  %d\n", *r.NapCount)
	}
	if r.FeedingCount != nil {
		fmt.Printf("  etetések: %d\n", *r.FeedingCount)
	}
	if r.Notes != nil {
		fmt.Printf("  jegyzet:  %s\n", *r.Notes)
	}
}

func init() {
	routineCmd.Flags().StringVar(&routineDate, "date", "", "date to show (YYYY-MM-DD, default today)")
}
