package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-faker/faker/v4"

	"github.com/jalusw/datastructures-algorithms/btree"
	"github.com/jalusw/datastructures-algorithms/cli"
)

var degree *int
var shouldSeed *bool
var seedNumRecords *int

func seedTreeWithTestRecords(t *btree.Btree) {
	for i := 0; i < *seedNumRecords; i++ {
		k := []byte(faker.Word() + faker.Word())
		v := []byte(faker.Word() + faker.Word())
		t.Insert(k, v)
	}
}

func main() {
	setupFlags()

	tree, err := btree.New(*degree)
	if err != nil {
		log.Fatal(err)
	}

	if *shouldSeed {
		seedTreeWithTestRecords(tree)
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, tree)
	demo.Start()
}

func setupFlags() {
	degree = flag.Int("degree", 3, "Minimum degree of the B-Tree. Nodes hold between degree-1 and 2*degree-1 keys.")
	shouldSeed = flag.Bool("seed", false, "Seed the tree using records created with go-faker.")
	seedNumRecords = flag.Int("records", 1000, "Amount of records to seed the tree with upon startup.")
	flag.Usage = func() {
		fmt.Println("\nB-Tree CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
