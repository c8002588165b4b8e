package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"

	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/greenhouse"
	"github.com/andrescamacho/greenhouse-go/internal/domain/supplies"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleColor  = color.New(color.Bold, color.FgCyan)
)

// simpleTable renders rows under a bold header with a normal border
func simpleTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleColor.Sprint(title))
}

// displayRunSummary prints one row per simulated day followed by run totals
func displayRunSummary(w io.Writer, result *simulation.RunResult) {
	printTitle(w, fmt.Sprintf("Run %s (seed %d)", result.RunID, result.Seed))

	headers := []string{"Day", "Date", "Level", "Customers", "Sold", "Failed", "Revenue", "Unhandled", "Matured", "Died", "Plants"}
	rows := make([][]string, 0, len(result.Days))
	for _, d := range result.Days {
		rows = append(rows, []string{
			strconv.Itoa(d.Day),
			d.Date.Format("Mon Jan 2"),
			string(d.BusinessLevel),
			strconv.Itoa(d.Customers),
			strconv.Itoa(d.OrdersCompleted),
			strconv.Itoa(d.OrdersFailed),
			d.Revenue.String(),
			strconv.Itoa(d.Unhandled),
			strconv.Itoa(d.Matured),
			strconv.Itoa(d.Died),
			strconv.Itoa(d.Census.Total),
		})
	}
	fmt.Fprintln(w, simpleTable(headers, rows))

	t := result.Totals()
	fmt.Fprintf(w, "Orders:       %d completed, %d failed, %d escalated\n", t.OrdersCompleted, t.OrdersFailed, t.Escalations)
	fmt.Fprintf(w, "Revenue:      %s\n", t.Revenue)
	fmt.Fprintf(w, "Questions:    %d answered, %d complaints\n", t.QueriesAnswered, t.Complaints)
	fmt.Fprintf(w, "Care:         %d tasks, %d plants watered, %d moved, %d planted\n", t.MaintenanceTasks, t.Watered, t.Moved, t.PlantsPlanted)
	fmt.Fprintf(w, "Unhandled:    %d\n", t.Unhandled)
	fmt.Fprintf(w, "Plant cycle:  %d matured, %d died, %d cleared\n", t.Matured, t.Died, t.Pruned)
}

// displayCensus prints stage and species counts
func displayCensus(w io.Writer, census greenhouse.Census) {
	fmt.Fprintf(w, "%d plants: %d seedling, %d mature, %d dead\n", census.Total, census.Seedling, census.Mature, census.Dead)

	rows := make([][]string, 0, len(census.BySpecies))
	for _, sc := range census.Species() {
		rows = append(rows, []string{sc.Name, strconv.Itoa(sc.Total), strconv.Itoa(sc.Living), strconv.Itoa(sc.Sellable)})
	}
	if len(rows) > 0 {
		fmt.Fprintln(w, simpleTable([]string{"Species", "Total", "Living", "Sellable"}, rows))
	}
}

// displaySupplies prints the supply stock levels
func displaySupplies(w io.Writer, levels []supplies.StockLevel) {
	rows := make([][]string, 0, len(levels))
	for _, l := range levels {
		rows = append(rows, []string{string(l.Item.Category), l.Item.Name, strconv.Itoa(l.Quantity), l.Price.String()})
	}
	fmt.Fprintln(w, simpleTable([]string{"Category", "Item", "Quantity", "Price"}, rows))
}

// displayPlants prints catalog entries
func displayPlants(w io.Writer, plants []catalog.PlantInfo) {
	rows := make([][]string, 0, len(plants))
	for _, p := range plants {
		rows = append(rows, []string{p.Name, p.Category, p.Care.Sunlight.String(), p.Care.Water.String(), p.Price.String()})
	}
	fmt.Fprintln(w, simpleTable([]string{"Plant", "Category", "Sunlight", "Water", "Price"}, rows))
}

// displayRuns prints saved run headers
func displayRuns(w io.Writer, runs []*simulation.RunRecord) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No saved runs.")
		return
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.ID,
			r.GreenhouseName,
			strconv.FormatUint(r.Seed, 10),
			r.StartedAt.Format("2006-01-02 15:04:05"),
			strconv.Itoa(len(r.Days)),
			strconv.Itoa(len(r.Orders)),
			r.Revenue().String(),
		})
	}
	fmt.Fprintln(w, simpleTable([]string{"Run", "Greenhouse", "Seed", "Started", "Days", "Orders", "Revenue"}, rows))
}

// displayEvents prints the event log
func displayEvents(w io.Writer, events []simulation.Event) {
	for _, e := range events {
		fmt.Fprintln(w, e.String())
	}
}
