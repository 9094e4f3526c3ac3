package db

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	dbpkg "github.com/dtnitsch/html-helpers/pkg/db"
	"github.com/urfave/cli/v2"
)

// DocsAction lists the most recent cached documents.
func DocsAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	docs, err := database.ListDocuments(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		fmt.Println("No cached documents found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-8s %-10s %-10s %-14s %s\n",
		"ID", "Created", "Op", "In", "Out", "Hash", "Source")
	fmt.Println(strings.Repeat("-", 100))

	for _, d := range docs {
		fmt.Printf("%-6d %-20s %-8s %-10d %-10d %-14s %s\n",
			d.DocID,
			d.CreatedAt.Format("2006-01-02 15:04:05"),
			d.Operation,
			d.InputBytes,
			d.OutputBytes,
			d.ContentHash[:12],
			d.Source,
		)
	}

	counts, err := database.CountByOperation()
	if err != nil {
		return fmt.Errorf("failed to count documents: %w", err)
	}

	fmt.Printf("\nTotals:")
	for op, n := range counts {
		fmt.Printf(" %s=%d", op, n)
	}
	fmt.Println()
	fmt.Println("\nTip: Use 'hh db doc <id>' to see a cached output")

	return nil
}

// DocAction prints the cached output for one document.
func DocAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	if c.Args().Len() == 0 {
		return fmt.Errorf("usage: hh db doc <id>")
	}
	docID, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid document ID: %s", c.Args().First())
	}

	doc, err := database.GetDocumentByID(docID)
	if err != nil {
		return err
	}

	fmt.Printf("Document %d\n", doc.DocID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:   %s\n", doc.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Operation: %s\n", doc.Operation)
	fmt.Printf("Source:    %s\n", doc.Source)
	fmt.Printf("Size:      %d bytes in, %d bytes out\n", doc.InputBytes, doc.OutputBytes)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println(string(doc.Output))

	return nil
}

// ClearAction prunes the document cache.
func ClearAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	var removed int64
	if olderThan := c.String("older-than"); olderThan != "" {
		age, err := time.ParseDuration(olderThan)
		if err != nil {
			return fmt.Errorf("invalid --older-than duration: %w", err)
		}
		removed, err = database.DeleteOlderThan(age)
		if err != nil {
			return err
		}
	} else {
		removed, err = database.Clear()
		if err != nil {
			return err
		}
	}

	fmt.Printf("Removed %d cached documents\n", removed)
	return nil
}
