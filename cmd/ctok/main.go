// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/mdhender/ctok"
	store "github.com/mdhender/ctok/stores/sqlite"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", true, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "ctok",
		Short: "ctok command runner",
		Long:  `ctok tokenizes C-family source text into a token tree.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Printf("ctok: version %q\n", ctok.Version().Core())
			}
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags || logFlags == 0 {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)
			return nil
		},
	}
	cmdRoot.AddCommand(cmdTokenize())
	cmdRoot.AddCommand(cmdScan())
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

// dumpNode is the marshal-friendly shape of a token-tree node for the
// --json and --yaml outputs.
type dumpNode struct {
	Kind  string     `json:"kind" yaml:"kind"`
	Text  string     `json:"text,omitempty" yaml:"text,omitempty"`
	Delim string     `json:"delim,omitempty" yaml:"delim,omitempty"`
	Line  int        `json:"line,omitempty" yaml:"line,omitempty"`
	Col   int        `json:"col,omitempty" yaml:"col,omitempty"`
	Nodes []dumpNode `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

func dumpStream(ts *ctok.TokenStream) []dumpNode {
	var nodes []dumpNode
	for i := 0; ; i++ {
		cell, ok := ts.At(i)
		if !ok {
			break
		}
		node := dumpNode{Kind: cell.Tree.Kind.String()}
		if cell.Pos != nil {
			node.Line, node.Col = cell.Pos.Line, cell.Pos.Column
		}
		if cell.Tree.Kind == ctok.KindGroup {
			node.Delim = cell.Tree.Delim.String()
			node.Nodes = dumpStream(cell.Tree.Group)
		} else {
			node.Text = cell.Tree.String()
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func cmdTokenize() *cobra.Command {
	var asJSON, asYAML bool
	var outputFile string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&asJSON, "json", asJSON, "dump the tree as JSON")
		cmd.Flags().BoolVar(&asYAML, "yaml", asYAML, "dump the tree as YAML")
		cmd.Flags().StringVar(&outputFile, "output", outputFile, "save output to file")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "tokenize <source-file>",
		Short: "tokenize a C source file and print the token tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			ts, err := ctok.Tokenize(input, ctok.WithName(args[0]))
			if err != nil {
				var lexErr *ctok.Error
				if errors.As(err, &lexErr) {
					ctok.PrintDiagnostic(os.Stderr, ctok.DiagnosticFromError(lexErr), args[0], input)
				}
				return err
			}

			var data []byte
			switch {
			case asJSON:
				if data, err = json.MarshalIndent(dumpStream(ts), "", "  "); err != nil {
					return err
				}
			case asYAML:
				if data, err = yaml.Marshal(dumpStream(ts)); err != nil {
					return err
				}
			default:
				data = []byte(ts.String() + "\n")
			}

			if outputFile == "" {
				fmt.Printf("%s", string(data))
			} else if err = os.WriteFile(outputFile, data, 0o644); err != nil {
				return err
			} else {
				fmt.Printf("%s: wrote %d bytes\n", outputFile, len(data))
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdScan() *cobra.Command {
	var dbFile string
	var initDB bool
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&dbFile, "db", dbFile, "sqlite database file (in-memory if empty)")
		cmd.Flags().BoolVar(&initDB, "init-db", initDB, "create the database file if missing")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "scan <dir>",
		Short: "tokenize every C file in a directory and record the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if initDB && dbFile != "" {
				if _, err := os.Stat(dbFile); os.IsNotExist(err) {
					if err := store.InitDatabase(dbFile); err != nil {
						return err
					}
				}
			}
			s, err := store.NewWithConfig(store.Config{Path: dbFile, InitSchema: dbFile == ""})
			if err != nil {
				return err
			}
			defer s.Close()

			if err := store.NewLoader(s).LoadDir(ctx, args[0]); err != nil {
				return err
			}

			sum, err := s.Summarize(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("scanned %d files (%d failed): %d tokens, %d groups\n",
				sum.Files, sum.Failed, sum.Tokens, sum.Groups)
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(ctok.Version().String())
				return nil
			}
			fmt.Println(ctok.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
