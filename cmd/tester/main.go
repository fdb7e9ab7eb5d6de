// Command tester sends texts to a running sentiment specialist and prints its verdicts.
//
//	tester "muito bom" "péssimo serviço"
//	tester -file feedback.txt
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"sentiment-lab/domain"
	"sentiment-lab/grpc/client"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	file := flag.String("file", "", "File with one text per line")
	flag.Parse()

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	texts := flag.Args()
	if *file != "" {
		texts, err = readLines(*file)
		if err != nil {
			return err
		}
	}
	if len(texts) == 0 {
		return fmt.Errorf("nothing to predict: pass texts as arguments or use -file")
	}

	ctx := context.Background()
	conn, err := client.Dial(ctx, config.SpecialistAddr, config.DialTimeout)
	if err != nil {
		return err
	}
	defer conn.Close()
	specialist := client.NewSpecialistClient(conn)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Text", "Label", "Scores", "Lang", "Time"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for i, text := range texts {
		analysis, err := specialist.Predict(ctx, fmt.Sprintf("tester-%d", i), text)
		if err != nil {
			table.Append([]string{text, paint(config.Colours, color.FgRed, "ERROR"), err.Error(), "", ""})
			continue
		}
		table.Append([]string{
			text,
			paint(config.Colours, labelColor(analysis), analysis.Result.PredictedLabel),
			formatScores(analysis.Result.Scores),
			analysis.Lang,
			analysis.ProcessingTime.String(),
		})
	}
	table.Render()
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// labelColor greens the winner when its probability is clear, yellow otherwise.
func labelColor(analysis domain.Analysis) color.Color {
	if analysis.Result.Probabilities[analysis.Result.PredictedLabel] >= 0.75 {
		return color.FgGreen
	}
	return color.FgYellow
}

func paint(enabled bool, c color.Color, s string) string {
	if !enabled {
		return s
	}
	return c.Render(s)
}

func formatScores(scores map[string]float64) string {
	labels := lo.Keys(scores)
	sort.Strings(labels)
	return strings.Join(lo.Map(labels, func(l string, _ int) string {
		return fmt.Sprintf("%s=%.3f", l, scores[l])
	}), " ")
}
