// Command badger_inspect prints the training history recorded by the specialist.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"sentiment-lab/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	limit := flag.Int("limit", 20, "Maximum number of runs, 0 for all")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	runs, err := repositories.NewTrainingRunRepository(db, logs.GetLoggerFromLevel(slog.LevelError)).List(*limit)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Run", "At", "Dataset", "Examples", "Vocabulary", "Labels", "Epochs", "Loss", "Accuracy", "Time"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, run := range runs {
		// The first 8 characters of the id are enough to tell runs apart
		displayID := run.ID
		if len(displayID) > 8 {
			displayID = displayID[:8]
		}
		table.Append([]string{
			displayID,
			run.At.Format("2006-01-02 15:04:05"),
			run.DatasetPath,
			fmt.Sprint(run.Examples),
			fmt.Sprint(run.Vocabulary),
			strings.Join(run.Labels, ","),
			fmt.Sprint(run.Epochs),
			fmt.Sprintf("%.4f", run.FinalLoss),
			fmt.Sprintf("%.2f", run.Accuracy),
			run.TrainingTime.String(),
		})
	}
	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		// A DB left open by a crashed specialist must be truncated once in write mode
		if strings.Contains(err.Error(), "Log truncate required") {
			repaired, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil).WithBypassLockGuard(true))
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			_ = repaired.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
