package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/smartlogistics/i18n"
	"github.com/smartlogistics/i18n/cmd/i18nlint/checker"
	"github.com/smartlogistics/i18n/internal/config"
)

func main() {
	dir := flag.String("d", "./locales", "directory of locale files (.yaml, .yml, .toml, .json)")
	base := flag.String("base", i18n.DefaultLanguage.String(), "language every other language is compared against")
	export := flag.String("export", "", "write go-i18n active.<lang>.toml files to this directory")
	failOnError := flag.Bool("fail", false, "exit with code 1 if any issue found")
	flag.Parse()

	baseLang, err := i18n.ParseLanguage(*base)
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	res, err := checker.CheckLocales(*dir, baseLang)
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	printResult(res)

	if *export != "" {
		paths, err := res.Export(*export)
		if err != nil {
			config.Exitf("Error: %v", err)
		}
		fmt.Println("\nExported:")
		for _, p := range paths {
			fmt.Println("  -", p)
		}
	}

	if *failOnError && res.HasIssues() {
		os.Exit(1)
	}
}

func printResult(res *checker.Result) {
	fmt.Println("=== I18N CHECK RESULT ===")
	fmt.Println("Languages:", res.Languages)
	fmt.Println("Default language:", res.DefaultLanguage)
	fmt.Println("Total keys:", len(res.AllKeys))

	for _, lang := range res.Languages {
		fmt.Printf("\n--- [%s] ---\n", lang)
		printKeys("Missing keys", res.MissingKeys[lang])
		printKeys("Redundant keys", res.RedundantKeys[lang])

		errs := res.SyntaxErrors[lang]
		if len(errs) == 0 {
			fmt.Println("Syntax errors: None")
			continue
		}
		keys := make([]string, 0, len(errs))
		for key := range errs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		fmt.Println("Syntax errors:")
		for _, key := range keys {
			fmt.Printf("  - %s: %v\n", key, errs[key])
		}
	}
}

func printKeys(title string, keys []string) {
	if len(keys) == 0 {
		fmt.Printf("%s: None\n", title)
		return
	}
	fmt.Printf("%s:\n", title)
	for _, k := range keys {
		fmt.Println("  -", k)
	}
}
