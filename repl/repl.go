/*
File    : go-pinky/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop (REPL) for the Pinky
interpreter. The REPL provides an interactive environment where users can:
- Enter Pinky code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and drives the same lexer-parser-evaluator pipeline as file execution,
with one difference: fatal diagnostics are recovered per line instead of
terminating the process, and the evaluator's root scope persists across
lines so definitions accumulate.
*/
package repl

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/go-pinky/eval"
	"github.com/akashmaji946/go-pinky/objects"
	"github.com/akashmaji946/go-pinky/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results and version info
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates all the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "Pinky >>> ")
}

// NewRepl creates and initializes a new REPL instance.
//
// Parameters:
//
//	banner  - ASCII art logo to display at startup
//	version - Version string of the interpreter
//	author  - Author contact information
//	line    - Separator line for formatting
//	license - Software license information
//	prompt  - Command prompt string
//
// Returns:
//
//	A pointer to a newly created Repl instance
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
//
// Parameters:
//
//	writer - The io.Writer to output the banner to (typically os.Stdout)
func (r *Repl) PrintBannerInfo(writer io.Writer) {

	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Pinky!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop:
// 1. Displays the welcome banner
// 2. Sets up line reading: readline (with history) when the reader is
//    os.Stdin, a plain scanner otherwise (server mode hands the TCP
//    connection in as reader and writer)
// 3. Creates an evaluator whose root scope persists across lines
// 4. Reads, evaluates, and prints until exit
//
// The loop continues until:
// - User types '.exit'
// - EOF is encountered (Ctrl+D)
// - An error occurs while reading
//
// Parameters:
//
//	reader - Input source (os.Stdin for the terminal, a net.Conn in server mode)
//	writer - Output destination (typically os.Stdout)
func (r *Repl) Start(reader io.Reader, writer io.Writer) {

	// Print the welcome banner and usage instructions
	r.PrintBannerInfo(writer)

	readLine := r.makeLineReader(reader, writer)

	// One evaluator for the whole session: variables and functions
	// defined on earlier lines stay visible on later ones
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	for {
		// Read a line of input; blocks until the user presses Enter
		line, err := readLine()
		if err != nil {
			// EOF or error occurred (e.g., Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Execute the input with panic recovery to prevent crashes
		r.executeWithRecovery(writer, line, evaluator)
	}
}

// makeLineReader chooses the line-reading strategy for the session. A
// session reading os.Stdin gets readline with editing and up/down
// history; any other reader (a TCP connection in server mode) gets a
// plain buffered scanner with the prompt written manually.
func (r *Repl) makeLineReader(reader io.Reader, writer io.Writer) func() (string, error) {
	if reader == os.Stdin {
		rl, err := readline.New(r.Prompt)
		if err != nil {
			panic(err)
		}
		return func() (string, error) {
			line, err := rl.Readline()
			if err == nil {
				// Save the command for up/down arrow navigation
				rl.SaveHistory(line)
			}
			return line, err
		}
	}

	scanner := bufio.NewScanner(reader)
	return func() (string, error) {
		io.WriteString(writer, r.Prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return scanner.Text(), nil
	}
}

// executeWithRecovery parses and evaluates one line of input with panic
// recovery. The interpreter core reports every error as a fatal panic
// carrying a formatted diagnostic; unlike file execution mode, the REPL
// catches it, shows it in red, and keeps the session alive so the user
// can correct the mistake and try again.
//
// A non-null result is echoed in yellow, which is how a bare expression
// like `1 + 2` shows its value.
//
// Parameters:
//
//	writer    - Output destination for results and errors
//	line      - The user's input line to execute
//	evaluator - The session evaluator (keeps state across lines)
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "%v\n", recovered)
		}
	}()

	// Parse the input line into an AST; lexer and parser diagnostics
	// surface as panics from here
	rootNode := parser.NewParser(line).Parse()

	// Evaluate the AST and get the result
	result := evaluator.Eval(rootNode)

	// Echo the result unless the line produced nothing
	if result != nil && result.GetType() != objects.NullType {
		yellowColor.Fprintf(writer, "%s\n", result.ToString())
	}
}
