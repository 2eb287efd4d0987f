// lpcuckoo-repl is an interactive shell for poking at a mapkv.Map.
//
// Usage:
//
//	lpcuckoo-repl [options]
//
// Options:
//
//	-c, --capacity      Target key capacity (default: 1024)
//	    --config         Path to a JSON/JWCC config file (overrides defaults)
//
// Commands (in REPL):
//
//	insert <key> <value>   Insert or overwrite a string-keyed entry
//	find <key>              Look up an entry
//	erase <key>              Remove an entry
//	len                      Count live entries
//	stats                    Show occupancy and load factor
//	stats -save <path>       Write stats as JSON to path
//	dump                     List every live key/value pair
//	help                     Show this help
//	exit / quit / q          Exit
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/salviati/lpcuckoo/mapkv"
)

func main() {
	capacity := flag.IntP("capacity", "c", 1024, "target key capacity")
	configPath := flag.String("config", "", "path to a JSON/JWCC config file")
	flag.Parse()

	cfg := mapkv.DefaultConfig()
	if *configPath != "" {
		loaded, err := mapkv.LoadConfigFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lpcuckoo-repl: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	m, err := mapkv.New[string, string](*capacity, mapkv.StringKeyHash, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lpcuckoo-repl: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	r := &REPL{m: m, capacity: *capacity}
	if err := r.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "lpcuckoo-repl: %v\n", err)
		os.Exit(1)
	}
}

// REPL is the interactive command loop around a mapkv.Map.
type REPL struct {
	m        *mapkv.Map[string, string]
	capacity int
	liner    *liner.State
}

// historyFile returns the path to the readline history file.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lpcuckoo_repl_history")
}

// Run starts the REPL loop.
func (r *REPL) Run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := os.Open(historyFile()); err == nil {
		r.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("lpcuckoo-repl (capacity=%d)\n", r.capacity)
	fmt.Println("Type 'help' for available commands.")
	fmt.Println()

	for {
		line, err := r.liner.Prompt("lpcuckoo> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")
				break
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			fmt.Println("Bye!")
			r.saveHistory()
			return nil

		case "help", "?":
			r.printHelp()

		case "insert", "put":
			r.cmdInsert(args)

		case "find", "get":
			r.cmdFind(args)

		case "erase", "del", "delete":
			r.cmdErase(args)

		case "len", "count":
			fmt.Println(r.m.Len())

		case "stats":
			r.cmdStats(args)

		case "dump":
			r.cmdDump()

		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()
	return nil
}

func (r *REPL) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			r.liner.WriteHistory(f)
			f.Close()
		}
	}
}

func (r *REPL) completer(line string) []string {
	commands := []string{
		"insert", "put", "find", "get", "erase", "del", "delete",
		"len", "count", "stats", "dump", "help", "exit", "quit", "q",
	}

	var completions []string
	lower := strings.ToLower(line)
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, lower) {
			completions = append(completions, cmd)
		}
	}
	return completions
}

func (r *REPL) printHelp() {
	fmt.Println(`Commands:
  insert <key> <value>   Insert or overwrite an entry
  find <key>              Look up an entry
  erase <key>              Remove an entry
  len                      Count live entries
  stats                    Show occupancy and load factor
  stats -save <path>       Write stats as JSON to path
  dump                     List every live key/value pair
  help                     Show this help
  exit / quit / q          Exit`)
}

func (r *REPL) cmdDump() {
	pairs := r.m.All()
	if len(pairs) == 0 {
		fmt.Println("(empty)")
		return
	}
	for _, p := range pairs {
		fmt.Printf("%s = %s\n", p.Key, p.Value)
	}
}

func (r *REPL) cmdInsert(args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: insert <key> <value>")
		return
	}

	existed, err := r.m.Insert(args[0], strings.Join(args[1:], " "))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if existed {
		fmt.Println("updated")
	} else {
		fmt.Println("inserted")
	}
}

func (r *REPL) cmdFind(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: find <key>")
		return
	}

	v, ok := r.m.Search(args[0])
	if !ok {
		fmt.Println("not found")
		return
	}
	fmt.Println(v)
}

func (r *REPL) cmdErase(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: erase <key>")
		return
	}

	if r.m.Delete(args[0]) {
		fmt.Println("erased")
	} else {
		fmt.Println("not found")
	}
}

func (r *REPL) cmdStats(args []string) {
	stats := r.m.Snapshot(time.Now())

	if len(args) >= 2 && args[0] == "-save" {
		if err := mapkv.DumpStats(args[1], stats); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("stats written to %s\n", args[1])
		return
	}

	fmt.Printf("len=%d load_factor=%.4f captured_at=%s\n",
		stats.Len, stats.LoadFactor, stats.CapturedAt.Format(time.RFC3339))
}
