// Package main provides the qcipher-cli command line interface for key
// generation, file encryption/decryption, and key inspection.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	qcipher "github.com/quantalock/qcipher-go"
	"github.com/quantalock/qcipher-go/engine"
)

const (
	version = "1.0.0"
	appName = "qcipher-cli"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "genkey":
		cmdGenkey(args)
	case "encrypt":
		cmdEncrypt(args)
	case "decrypt":
		cmdDecrypt(args)
	case "info":
		cmdInfo(args)
	case "help", "--help", "-h":
		printUsage()
	case "version", "--version", "-v":
		fmt.Printf("%s version %s\n", appName, version)
		fmt.Printf("qcipher library version %s\n", qcipher.Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`%s - qcipher symmetric file encryption CLI

USAGE:
    %s <COMMAND> [ARGS]

COMMANDS:
    genkey <length> <key_path>              Generate a new key of the given length
    encrypt <input> <output> <key_path>     Encrypt input to output under a key
    decrypt <input> <output> <key_path>     Decrypt input to output under a key
    info <key_path>                         Show a key file's derived parameters
    version                                 Show version information
    help                                    Show this help message

EXAMPLES:
    %s genkey 4096 secret.qkey
    %s encrypt plain.txt cipher.bin secret.qkey
    %s decrypt cipher.bin plain.txt secret.qkey
    %s info secret.qkey
`, appName, appName, appName, appName, appName, appName)
}

func cmdGenkey(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Error: genkey requires <length> <key_path>")
		os.Exit(1)
	}
	length, err := parseKeyLength(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	keyPath := args[1]

	key, err := engine.Generate(length)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating key: %v\n", err)
		os.Exit(1)
	}

	data, err := engine.SaveKey(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error serializing key: %v\n", err)
		os.Exit(1)
	}

	writeSensitiveFile(keyPath, data)
	fmt.Printf("Generated %d-byte key -> %s\n", length, keyPath)
}

func cmdEncrypt(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "Error: encrypt requires <input> <output> <key_path>")
		os.Exit(1)
	}
	inputPath, outputPath, keyPath := args[0], args[1], args[2]

	key := loadKeyOrExit(keyPath)
	c, err := engine.NewCipher(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building cipher: %v\n", err)
		os.Exit(1)
	}

	plaintext, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	ciphertext, err := engine.EncryptBytes(c, plaintext)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encrypting: %v\n", err)
		os.Exit(1)
	}

	writeSensitiveFile(outputPath, ciphertext)
	fmt.Printf("Encrypted %d bytes -> %d bytes in %v\n", len(plaintext), len(ciphertext), elapsed)
}

func cmdDecrypt(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "Error: decrypt requires <input> <output> <key_path>")
		os.Exit(1)
	}
	inputPath, outputPath, keyPath := args[0], args[1], args[2]

	key := loadKeyOrExit(keyPath)
	c, err := engine.NewCipher(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building cipher: %v\n", err)
		os.Exit(1)
	}

	containerBytes, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	plaintext, err := engine.DecryptBytes(c, containerBytes)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decrypting: %v\n", err)
		os.Exit(1)
	}

	writeSensitiveFile(outputPath, plaintext)
	fmt.Printf("Decrypted %d bytes -> %d bytes in %v\n", len(containerBytes), len(plaintext), elapsed)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: info requires <key_path>")
		os.Exit(1)
	}
	key := loadKeyOrExit(args[0])

	pairs := engine.EntanglementPairs(key)
	fingerprint := engine.Fingerprint(key.MasterSeed)

	fmt.Printf("Key length:            %d bytes\n", key.KeyLength)
	fmt.Printf("Lattice dimension:     %d\n", len(key.LatticeBasis))
	fmt.Printf("Measurement bases len: %d bytes\n", len(key.MeasurementBases))
	fmt.Printf("Entanglement pairs:    %d\n", len(pairs))
	fmt.Printf("Created at:            %s\n", time.Unix(key.CreatedAt, 0).UTC().Format(time.RFC3339))
	fmt.Printf("Checksum (first 16):   %s\n", hex.EncodeToString(key.Checksum[:16]))
	fmt.Printf("Fingerprint:           %s\n", hex.EncodeToString(fingerprint))
	fmt.Printf("Display label:         %s (sha3-256, non-authoritative)\n", engine.DisplayLabel(key))
}

func loadKeyOrExit(keyPath string) *qcipher.QuantumKey {
	data, err := os.ReadFile(keyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading key file: %v\n", err)
		os.Exit(1)
	}
	key, err := engine.LoadKey(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading key: %v\n", err)
		os.Exit(1)
	}
	return key
}

func parseKeyLength(s string) (uint64, error) {
	var length uint64
	if _, err := fmt.Sscanf(s, "%d", &length); err != nil {
		return 0, fmt.Errorf("invalid key length %q", s)
	}
	return length, nil
}

// writeSensitiveFile writes data with owner-only permissions, matching the
// handling any key or plaintext material on disk needs regardless of
// which command produced it.
func writeSensitiveFile(path string, data []byte) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	if err := os.Chmod(path, 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting file permissions: %v\n", err)
		os.Exit(1)
	}
}
