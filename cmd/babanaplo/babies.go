package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/babanaplo/babanaplo/internal/models"
)

var babiesCmd = &cobra.Command{
	Use:   "babies",
	Short: "List the babies belonging to the logged-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := babyStore.LoadBabies(cmd.Context()); err != nil {
			return fmt.Errorf("%s", babyStore.Err())
		}
		babies := babyStore.Babies()
		if len(babies) == 0 {
			fmt.Println("Nincs még baba rögzítve.")
			return nil
		}
		for _, b := range babies {
			fmt.Printf("%d  %s  (%s, született %s)\n",
				b.ID, b.Name, b.Gender, b.DateOfBirth.Format("2006-01-02"))
		}
		return nil
	},
}

var babiesAddCmd = &cobra.Command{
	Use:   "add <name> <date-of-birth> <Male|Female>",
	Short: "Register a new baby (date of birth as YYYY-MM-DD)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		dob, err := time.Parse("2006-01-02", args[1])
		if err != nil {
			return fmt.Errorf("a születési dátum formátuma ÉÉÉÉ-HH-NN")
		}
		data := &models.CreateBabyData{
			Name:        args[0],
			DateOfBirth: dob,
			Gender:      models.Gender(args[2]),
		}
		if err := babyStore.CreateBaby(cmd.Context(), data); err != nil {
			return fmt.Errorf("%s", babyStore.Err())
		}
		baby := babyStore.CurrentBaby()
		fmt.Printf("Baba rögzítve: %s (id=%d)\n", baby.Name, baby.ID)
		return nil
	},
}

func init() {
	babiesCmd.AddCommand(babiesAddCmd)
}
