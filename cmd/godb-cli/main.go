package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/c-bata/go-prompt"

	"tinyDB/internal/schema"
)

var history []string

// completer suggests keywords and type names for the word under the cursor.
func completer(d prompt.Document) []prompt.Suggest {
	word := d.GetWordBeforeCursor()
	if word == "" {
		return nil
	}
	return prompt.FilterHasPrefix(suggestions, word, true)
}

var suggestions = func() []prompt.Suggest {
	s := []prompt.Suggest{
		{Text: "CREATE", Description: "CREATE TABLE name (column Type, ...)"},
		{Text: "TABLE"},
		{Text: "IF", Description: "IF NOT EXISTS"},
		{Text: "NOT"},
		{Text: "EXISTS"},
		{Text: "PRIMARY", Description: "PRIMARY KEY column suffix"},
		{Text: "KEY"},
		{Text: "NULLABLE", Description: "NULLABLE(Type)"},
	}
	for _, t := range schema.AllDataTypes() {
		s = append(s, prompt.Suggest{Text: t.String(), Description: "type"})
	}
	return s
}()

func main() {
	serverURL := flag.String("server", "", "send statements to a godb-server at this URL instead of parsing locally")
	showSQLite := flag.Bool("sqlite", false, "also print the SQLite DDL of parsed tables (local mode)")
	flag.Parse()

	var run func(string) string
	if *serverURL != "" {
		client := &remote{url: *serverURL, http: &http.Client{Timeout: 10 * time.Second}}
		run = client.run
		fmt.Printf("Sending statements to %s\n", *serverURL)
	} else {
		run = func(stmt string) string { return runLocal(stmt, *showSQLite) }
	}

	fmt.Println("Welcome to GoDB!")
	fmt.Println("Type a CREATE TABLE statement (type 'exit' to quit)")

	p := prompt.New(
		func(in string) {
			input := strings.TrimSpace(in)
			if input == "" {
				return
			}
			history = append(history, input)
			if input == "exit" || input == "quit" {
				fmt.Println("Bye!")
				os.Exit(0)
			}
			fmt.Println(run(input))
		},
		completer,
		prompt.OptionTitle("GoDB: schema front-end"),
		prompt.OptionPrefix("godb> "),
		prompt.OptionHistory(history),
	)
	p.Run()
}
