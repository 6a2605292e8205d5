/*
File    : go-pinky/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Pinky interpreter.
It provides the following modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute Pinky source files from the command line
3. Server Mode: Serve the REPL over TCP, one session per connection
4. AST Mode: Pretty-print the parse tree of a source file

The interpreter uses a lexer-parser-evaluator pipeline to process Pinky code.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/akashmaji946/go-pinky/eval"
	"github.com/akashmaji946/go-pinky/objects"
	"github.com/akashmaji946/go-pinky/parser"
	"github.com/akashmaji946/go-pinky/repl"
	"github.com/fatih/color"
)

// VERSION represents the current version of the Pinky interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "Pinky >>> "

// BANNER is the ASCII art logo displayed when starting the REPL
// It shows "Pinky" in stylized ASCII characters
var BANNER = `
 ███████   ██             ██
 ██    ██  ▀▀             ██
 ██    ██ ████  ████████  ██  ██  ██    ██
 ███████    ██  ██  ██  ██ ████    ██  ██
 ██         ██  ██  ██  ██ ██ ██    ████
 ██       ██████ ██  ██  ██ ██  ██    ██
 ▀▀       ▀▀▀▀▀▀ ▀▀  ▀▀  ▀▀ ▀▀  ▀▀  ██▀
                                  ▀▀▀
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for file execution output
// These colors are used to provide visual feedback during file execution:
// - redColor: Error messages and critical failures
// - yellowColor: Normal output and results
// - cyanColor: Informational messages
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the Pinky interpreter.
// It determines the operating mode based on command-line arguments:
//
// Usage:
//
//	go-pinky              - Start in REPL (interactive) mode
//	go-pinky <filename>   - Execute the specified Pinky source file
//	go-pinky server <port>- Serve the REPL on a TCP port
//	go-pinky --ast <file> - Pretty-print the AST of a source file
//	go-pinky --help       - Display help information
//	go-pinky --version    - Display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		// Handle --help flag
		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		// Handle --version flag
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		// AST mode: parse a file and pretty-print the tree
		if arg == "--ast" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing file for AST mode. Usage: go-pinky --ast <file>\n")
				os.Exit(1)
			}
			dumpAST(os.Args[2])
			return
		}

		// Server mode: serve the REPL over TCP
		if arg == "server" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: go-pinky server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		// File mode: read and run a file
		runFile(arg)
	} else {
		// REPL mode: Start interactive interpreter
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	}
}

// showHelp displays the help information for the Pinky interpreter
func showHelp() {
	cyanColor.Println("Pinky - An Interpreted Programming Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  go-pinky                    Start interactive REPL mode")
	yellowColor.Println("  go-pinky <path-to-file>     Execute a Pinky file (.pinky)")
	yellowColor.Println("  go-pinky server <port>      Start REPL server on specified port")
	yellowColor.Println("  go-pinky --ast <file>       Pretty-print the AST of a file")
	yellowColor.Println("  go-pinky --help             Display this help message")
	yellowColor.Println("  go-pinky --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                       Exit the REPL")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  go-pinky                    # Start REPL")
	yellowColor.Println("  go-pinky samples/factorial.pinky")
	yellowColor.Println("  go-pinky server 8080        # Start REPL server on port 8080")
}

// showVersion displays the version information for the Pinky interpreter
func showVersion() {
	cyanColor.Println("Pinky - An Interpreted Programming Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a Pinky source file.
// It handles the complete file execution pipeline:
// 1. Read the file from disk
// 2. Convert contents to string
// 3. Execute the code with error recovery
//
// Parameters:
//
//	fileName - Path to the Pinky source file to execute
//
// Error Handling:
//   - File read errors: Displays error message and exits with code 1
//   - Lexer/parse/runtime errors: Handled by executeFileWithRecovery()
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	executeFileWithRecovery(string(fileContent))
}

// executeFileWithRecovery runs a program with panic recovery. Every
// fatal diagnostic of the interpreter core (lexical, syntactic,
// runtime) arrives here as a panic; it is printed in red and the
// process exits non-zero. On success, a non-null top-level result is
// echoed in yellow after the program's own output.
//
// Parameters:
//
//	source - The Pinky source code as a string
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "%v\n", recovered)
			os.Exit(1)
		}
	}()

	// Parse the source code into an Abstract Syntax Tree (AST)
	rootNode := parser.NewParser(source).Parse()

	// Create evaluator and execute the AST
	evaluator := eval.NewEvaluator()
	result := evaluator.Eval(rootNode)

	// Echo the final result if the program left one
	if result != nil && result.GetType() != objects.NullType {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.ToString())
	}
}

// startServer initializes and runs the Pinky REPL server.
// It listens on the specified port for incoming TCP connections.
// Each connection is handled in a separate goroutine, providing a
// dedicated REPL session.
//
// Parameters:
//
//	port - The network port to listen on (e.g., "8080")
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("Pinky REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

// handleClient manages a single client connection for the REPL server.
// It creates a new REPL instance and starts it, using the network
// connection as both the input reader and output writer.
func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}

// dumpAST parses a source file and pretty-prints its AST using the
// printing visitor. Parse diagnostics are reported the same way as in
// file execution mode.
//
// Parameters:
//
//	fileName - Path to the Pinky source file to parse
func dumpAST(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "%v\n", recovered)
			os.Exit(1)
		}
	}()

	rootNode := parser.NewParser(string(fileContent)).Parse()
	visitor := &PrintingVisitor{}
	rootNode.Accept(visitor)
	fmt.Println(visitor)
}
