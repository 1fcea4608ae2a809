package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// PrintJSON outputs data as indented JSON
func (o *Output) PrintJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

// PrintRows outputs a ranked list of leaderboard rows
func (o *Output) PrintRows(rows []Row) {
	if o.format == "json" {
		o.PrintJSON(rows)
		return
	}
	for i, row := range rows {
		fmt.Printf("%2d. %s — %d\n", i+1, row.Name, row.Score)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}
