package main

import (
	"fmt"
	"os"
	"time"

	"snake/internal/pipeline"
)

const VERSION = "0.1.0"

var debugMode = false

func main() {
	start := time.Now()
	exitCode := run(os.Args[1:])
	if exitCode == 0 {
		printDebug(fmt.Sprintf("Lex time: %s", time.Since(start)))
	}
	os.Exit(exitCode)
}

func run(args []string) int {
	showWords := false
	var filePath string
	for _, arg := range args {
		switch {
		case arg == "--debug":
			debugMode = true
		case arg == "--words":
			showWords = true
		case len(arg) > 0 && arg[0] != '-' && filePath == "":
			filePath = arg
		}
	}

	printDebug("Snake front end V" + VERSION)
	printDebug("Using debug mode.")

	if filePath == "" {
		fmt.Println("Usage: snake [--debug] [--words] <file>")
		return 1
	}
	printDebug("Reading: " + filePath)

	if !fileExists(filePath) {
		fmt.Println("Error: File does not exist.")
		return 1
	}

	content, err := getFileContent(filePath)
	if err != nil {
		fmt.Println("Error: Could not read file.")
		fmt.Println("Error details: " + err.Error())
		return 1
	}

	opts := pipeline.DefaultOptions()
	opts.Verbose = debugMode

	result, err := pipeline.Front(content, opts)
	if showWords && result != nil {
		fmt.Println("Words:")
		for _, w := range result.Words {
			fmt.Printf("  %q\n", w)
		}
	}
	if err != nil {
		fmt.Println("Lexing errors:")
		fmt.Printf("  %s\n", err.Error())
		return 1
	}

	fmt.Println("Tokens:")
	for _, tok := range result.Tokens {
		fmt.Printf("  %s\n", tok)
	}

	printDebug("Front end finished successfully.")
	return 0
}

/**
* Prints a debug message to the console.
* @param message The message to print.
 */
func printDebug(message string) {
	if !debugMode {
		return
	}
	fmt.Println("[DEBUG] " + message)
}

/**
* Checks if a file exists at the given path.
* @param filePath The path to the file to check.
* @return true if the file exists, false otherwise.
 */
func fileExists(filePath string) bool {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return false
	}
	return true
}

/**
* Gets content of a file at the given path.
* @param filePath The path to the file to read.
* @return The content of the file as a string, or an error if the file cannot be read.
 */
func getFileContent(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
