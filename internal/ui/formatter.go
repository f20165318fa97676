package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"runnable"
	"runnable/internal/config"
	"runnable/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintMetaStats reads and displays meta statistics from the JSON results file
func (f *Formatter) PrintMetaStats() error {
	// Clear terminal screen
	fmt.Print("\033[2J\033[H")

	outputPath := f.config.GetOutputPath()

	// Read JSON file
	data, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	// Parse JSON
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	meta := output.Meta

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Case Execution Statistics                  ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	// Print table
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	// Total Cases
	fmt.Printf("│ %-31s │ ", "Total Cases")
	color.White("%-27d │\n", meta.TotalCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Passed Cases
	fmt.Printf("│ %-31s │ ", "Passed Cases")
	color.Green("%-27d │\n", meta.PassedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Failed Cases
	fmt.Printf("│ %-31s │ ", "Failed Cases")
	color.Red("%-27d │\n", meta.FailedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Skipped Cases
	fmt.Printf("│ %-31s │ ", "Skipped Cases")
	color.Yellow("%-27d │\n", meta.SkippedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Duration
	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Workers
	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Run ID
	fmt.Printf("│ %-31s │ ", "Run ID")
	color.White("%-27s │\n", meta.RunID)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Timestamp
	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	// Print summary line
	fmt.Println()
	if meta.FailedCases == 0 {
		color.Green("✓ All cases passed!")
	} else {
		color.Red("✗ %d case(s) failed", meta.FailedCases)
		fmt.Println()
		f.printFailedCasesTree(output.Failures)
	}

	return nil
}

// TreeNode represents a node in the case name tree structure
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
	Failures []domain.CaseFailure
	IsCase   bool
}

// printFailedCasesTree prints a tree of failed cases grouped by name segments
func (f *Formatter) printFailedCasesTree(failures []domain.CaseFailure) {
	if len(failures) == 0 {
		return
	}

	root := &TreeNode{
		Name:     "",
		Children: make(map[string]*TreeNode),
		IsCase:   false,
	}

	// Group names like "strings/reverse" into nested nodes
	for _, failure := range failures {
		parts := strings.Split(failure.Name, "/")
		current := root

		for i, part := range parts {
			if part == "" {
				continue
			}

			if current.Children[part] == nil {
				current.Children[part] = &TreeNode{
					Name:     part,
					Children: make(map[string]*TreeNode),
					IsCase:   i == len(parts)-1,
				}
			}

			current = current.Children[part]

			// Last segment carries the failure details
			if i == len(parts)-1 {
				current.Failures = append(current.Failures, failure)
			}
		}
	}

	// Print tree recursively
	f.printTreeNode(root, "", true, true)
}

func (f *Formatter) printTreeNode(node *TreeNode, prefix string, isLast bool, isRoot bool) {
	// Sort children for consistent output
	var keys []string
	for key := range node.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Print children
	for i, key := range keys {
		child := node.Children[key]
		isLastChild := i == len(keys)-1

		// Determine connector
		var connector string
		if isRoot {
			connector = ""
		} else if isLastChild {
			connector = prefix + "   |_"
		} else {
			connector = prefix + "  |_"
		}

		// Print child node
		if child.IsCase {
			color.Yellow("%s%s", connector, child.Name)
		} else {
			color.Cyan("%s%s", connector, child.Name)
		}

		// Print failure messages if this is a case
		if child.IsCase && len(child.Failures) > 0 {
			for j, failure := range child.Failures {
				isLastCase := j == len(child.Failures)-1
				var casePrefix string
				if isLastChild {
					if isLastCase {
						casePrefix = strings.ReplaceAll(prefix, "|", " ") + "        |_"
					} else {
						casePrefix = prefix + "  |        |_"
					}
				} else {
					if isLastCase {
						casePrefix = prefix + "  |        |_"
					} else {
						casePrefix = prefix + "  |  |     |_"
					}
				}
				color.Red("%s%s", casePrefix, failure.Message)
			}
		}

		// Recursively print children
		var newPrefix string
		if isRoot {
			newPrefix = "  "
		} else if isLastChild {
			newPrefix = strings.ReplaceAll(prefix, "|", " ") + "  "
		} else {
			newPrefix = prefix + "  |"
		}
		f.printTreeNode(child, newPrefix, isLastChild, false)
	}
}

// PrintCaseList prints the registered cases, optionally with their skip and
// panic annotations. failedNames is optional; if set, cases in this set are
// marked with [F] in red (from last run).
func (f *Formatter) PrintCaseList(cases []runnable.Case, detail bool, failedNames map[string]struct{}) error {
	if detail {
		// Display each case with its registration details
		color.Green("Found %d case(s):\n", len(cases))

		for i, c := range cases {
			annotations := caseAnnotations(c)

			failMarker := ""
			if len(failedNames) > 0 {
				if _, ok := failedNames[c.Name]; ok {
					failMarker = " " + color.RedString("[F]")
				}
			}

			// Print case as root node
			isLastCase := i == len(cases)-1
			if isLastCase {
				color.Cyan("└── %s%s", c.Name, failMarker)
			} else {
				color.Cyan("├── %s%s", c.Name, failMarker)
			}

			// Print annotations as children
			for j, annotation := range annotations {
				isLastAnnotation := j == len(annotations)-1

				var prefix string
				if isLastCase {
					if isLastAnnotation {
						prefix = "    └── "
					} else {
						prefix = "    ├── "
					}
				} else {
					if isLastAnnotation {
						prefix = "│   └── "
					} else {
						prefix = "│   ├── "
					}
				}

				fmt.Printf("%s%s\n", prefix, color.YellowString(annotation))
			}

			// Add spacing between annotated cases (except for the last one)
			if len(annotations) > 0 && i < len(cases)-1 {
				fmt.Println()
			}
		}
	} else {
		// Display simple list of case names
		color.Green("Found %d case(s):\n", len(cases))

		for i, c := range cases {
			failMarker := ""
			if len(failedNames) > 0 {
				if _, ok := failedNames[c.Name]; ok {
					failMarker = " " + color.RedString("[F]")
				}
			}

			if i == len(cases)-1 {
				color.Cyan("└── %s%s", c.Name, failMarker)
			} else {
				color.Cyan("├── %s%s", c.Name, failMarker)
			}
		}
	}

	return nil
}

// caseAnnotations lists the registration details worth showing for a case
func caseAnnotations(c runnable.Case) []string {
	var annotations []string
	if c.Skip != "" {
		annotations = append(annotations, fmt.Sprintf("skip: %s", c.Skip))
	}
	if c.ExpectPanic != "" {
		annotations = append(annotations, fmt.Sprintf("expects panic containing %q", c.ExpectPanic))
	}
	return annotations
}
