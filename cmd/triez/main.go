// Command triez loads a word list into a trie and runs queries against it.
//
//	triez [-utf16] [-width N] [-suffix K] [-prefix K] [-correct K [-distance D]] [-v] words.txt
//
// Every line of the word list is a key; its value is the line number.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf16"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/aglyzov/go-triez/trie"
)

var (
	keyColor   = color.New(color.FgGreen, color.Bold).SprintFunc()
	valColor   = color.New(color.FgCyan).SprintFunc()
	titleColor = color.New(color.FgYellow).SprintFunc()
	errColor   = color.New(color.FgRed).SprintFunc()
)

func main() {
	var (
		wide     = flag.Bool("utf16", false, "the word list is UTF-16 encoded (BOM aware, little-endian by default)")
		width    = flag.Int("width", 4, "trie character width in bytes: 1, 2 or 4")
		suffix   = flag.String("suffix", "", "print the stored keys starting with this prefix")
		prefix   = flag.String("prefix", "", "print the stored keys being prefixes of this key")
		correct  = flag.String("correct", "", "print the stored keys close to this key")
		distance = flag.Int("distance", 1, "maximum edit distance for -correct")
		verbose  = flag.Bool("v", false, "trace at debug level")
	)

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] words.txt\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	if *verbose {
		tracing.Select("triez").SetTraceLevel(tracing.LevelDebug)
	} else {
		tracing.Select("triez").SetTraceLevel(tracing.LevelError)
	}

	tr, err := trie.New(trie.WithCharWidth(trie.Width(*width)))
	if err != nil {
		fail(err)
	}
	defer tr.Destroy()

	if err = load(tr, flag.Arg(0), *wide); err != nil {
		fail(err)
	}

	fmt.Printf("%s %d keys, %d nodes, height %d, ~%d bytes\n",
		titleColor("loaded"), tr.ItemCount(), tr.NodeCount(), tr.Height(), tr.MemUsage())

	printer := func(k trie.Key, v any) bool {
		fmt.Printf("  %s\t%s\n", keyColor(k.String()), valColor(v))
		return true
	}

	if *suffix != "" {
		fmt.Println(titleColor("suffixes of"), *suffix)
		if err = tr.Suffixes(toKey(*suffix, *wide), -1, printer); err != nil {
			fail(err)
		}
	}

	if *prefix != "" {
		fmt.Println(titleColor("prefixes of"), *prefix)

		it, err := tr.IterPrefixes(toKey(*prefix, *wide), -1)
		if err != nil {
			fail(err)
		}
		for it.Next() {
			printer(it.Key(), it.Value())
		}
		if err = it.Err(); err != nil {
			fail(err)
		}
		it.Close()
	}

	if *correct != "" {
		fmt.Println(titleColor("corrections of"), *correct)
		if err = tr.Corrections(toKey(*correct, *wide), *distance, printer); err != nil {
			fail(err)
		}
	}
}

// load adds every non-empty line of the file as a key.
func load(tr *trie.Trie, path string, wide bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if wide {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		r = transform.NewReader(f, dec)
	}

	var (
		scanner = bufio.NewScanner(r)
		line    int
	)

	for scanner.Scan() {
		line++

		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if err = tr.Add(toKey(word, wide), line); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}

	return scanner.Err()
}

// toKey keeps UTF-16 input as 2-byte keys.
func toKey(s string, wide bool) trie.Key {
	if wide {
		return trie.FromUTF16(utf16.Encode([]rune(s)))
	}
	return trie.FromString(s)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, errColor("error:"), err)
	os.Exit(1)
}
