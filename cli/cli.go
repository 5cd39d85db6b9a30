package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jalusw/datastructures-algorithms/btree"
	"github.com/jalusw/datastructures-algorithms/snapshot"
)

type Cli struct {
	scanner    *bufio.Scanner
	tree       *btree.Btree
	visualizer *btree.Visualizer
}

func NewCli(s *bufio.Scanner, t *btree.Btree) *Cli {
	v := &btree.Visualizer{
		Tree: t,
	}
	return &Cli{scanner: s, tree: t, visualizer: v}
}

func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		c.processInput(c.scanner.Text())
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Print(`
B-Tree CLI

Available Commands:
  SET <key> <val> Insert a key-value pair into the B-Tree
  GET <key>       Retrieve the value for key from the B-Tree
  DEL <key>       Remove a key-value pair from the B-Tree
  MIN             Show the smallest key in the B-Tree
  MAX             Show the largest key in the B-Tree
  LIST            Print all keys in ascending order
  SAVE <file>     Write a compressed snapshot of the B-Tree
  LOAD <file>     Replace the B-Tree with a saved snapshot
  EXIT            Terminate this session

`)
}

func (c *Cli) printPrompt() {
	fmt.Print("> ")
}

func (c *Cli) processInput(line string) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		fmt.Printf("Unknown command \"%s\"\n", command)
	case "set":
		c.processSetCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "del":
		c.processDeleteCommand(fields[1:])
	case "min":
		c.processMinCommand()
	case "max":
		c.processMaxCommand()
	case "list":
		c.processListCommand()
	case "save":
		c.processSaveCommand(fields[1:])
	case "load":
		c.processLoadCommand(fields[1:])
	case "exit":
		os.Exit(0)
	}
}

func (c *Cli) processSetCommand(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: SET <key> <value>")
		return
	}
	c.tree.Insert([]byte(args[0]), []byte(args[1]))
	fmt.Println(c.tree)
	fmt.Println(c.visualizer.Visualize())
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: GET <key>")
		return
	}
	val, err := c.tree.Find([]byte(args[0]))

	if err != nil {
		fmt.Println("Key not found.")
		return
	}
	fmt.Println(string(val))
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: DEL <key>")
		return
	}
	res := c.tree.Delete([]byte(args[0]))

	if !res {
		fmt.Println("Key not found.")
		return
	}
	fmt.Println(c.tree)
	fmt.Println(c.visualizer.Visualize())
}

func (c *Cli) processMinCommand() {
	key, found := c.tree.Min()
	if !found {
		fmt.Println("The tree is empty.")
		return
	}
	fmt.Println(string(key))
}

func (c *Cli) processMaxCommand() {
	key, found := c.tree.Max()
	if !found {
		fmt.Println("The tree is empty.")
		return
	}
	fmt.Println(string(key))
}

func (c *Cli) processListCommand() {
	if c.tree.Len() == 0 {
		fmt.Println("The tree is empty.")
		return
	}
	c.tree.Ascend(func(key, _ []byte) bool {
		fmt.Println(string(key))
		return true
	})
}

func (c *Cli) processSaveCommand(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: SAVE <file>")
		return
	}
	f, err := os.Create(args[0])
	if err != nil {
		fmt.Printf("Cannot create %s: %v\n", args[0], err)
		return
	}
	defer f.Close()

	if err := snapshot.Write(f, c.tree); err != nil {
		fmt.Printf("Snapshot failed: %v\n", err)
		return
	}
	fmt.Printf("Saved %d keys to %s\n", c.tree.Len(), args[0])
}

func (c *Cli) processLoadCommand(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: LOAD <file>")
		return
	}
	f, err := os.Open(args[0])
	if err != nil {
		fmt.Printf("Cannot open %s: %v\n", args[0], err)
		return
	}
	defer f.Close()

	tree, err := snapshot.Read(f, c.tree.Degree())
	if err != nil {
		fmt.Printf("Snapshot load failed: %v\n", err)
		return
	}
	c.tree = tree
	c.visualizer.Tree = tree
	fmt.Println(c.tree)
	fmt.Println(c.visualizer.Visualize())
}
