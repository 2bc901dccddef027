package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"navexa/internal/cli"
	"navexa/internal/services"
	"navexa/internal/store"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger("info")
	cfg := cli.LoadAndValidateConfig(logger)
	logger = cli.SetupLogger(cfg.LogLevel)

	blobs := cli.InitStorage(logger, cfg.DBPath)
	defer blobs.Close()

	st := store.New(blobs, logger, nil, nil)

	ctx := context.Background()
	if err := st.Hydrate(ctx); err != nil {
		logger.Error("Failed to hydrate store", "error", err)
		os.Exit(1)
	}

	now := time.Now()
	dash := services.BuildDashboard(st.Trips(), st.Vehicles(), now)
	alerts := services.VehicleAlerts(st.Vehicles(), now)

	printDashboard(dash)
	printAlerts(alerts)
}

func printDashboard(d services.Dashboard) {
	fmt.Printf("Dashboard — %s\n\n", d.Date.Format("Monday, January 2, 2006"))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Today's trips\t%d\t(%d this month)\n", d.TripsToday, d.TripsThisMonth)
	fmt.Fprintf(w, "Monthly income\t%s\t\n", d.MonthlyIncome)
	fmt.Fprintf(w, "Monthly expense\t%s\t\n", d.MonthlyExpense)
	fmt.Fprintf(w, "Monthly net profit\t%s\t\n", d.MonthlyProfit)
	fmt.Fprintf(w, "Pending payments\t%s\t(%d drivers pending)\n", d.PendingTotal, d.PendingCount)
	if d.HasBestVehicle {
		fmt.Fprintf(w, "Best vehicle\t%s\t(%s profit)\n",
			d.BestVehicle.Vehicle.RegistrationNumber, d.BestVehicle.Profit)
	} else {
		fmt.Fprintf(w, "Best vehicle\tN/A\t(no vehicles)\n")
	}
	w.Flush()

	if len(d.DailyBreakdown) == 0 {
		fmt.Println("\nNo trips recorded this month.")
		return
	}

	fmt.Println("\nThis month by day:")
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "day\tincome\texpense\tprofit")
	for _, day := range d.DailyBreakdown {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", day.Day.Label(), day.Income, day.Expense, day.Profit)
	}
	w.Flush()
}

func printAlerts(alerts []services.VehicleAlert) {
	if len(alerts) == 0 {
		return
	}
	fmt.Println("\nVehicle documents needing attention:")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, a := range alerts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			a.Vehicle.RegistrationNumber, a.Document, a.Due.Format("2006-01-02"), a.State)
	}
	w.Flush()
}
