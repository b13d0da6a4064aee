// FILE: lixenwraith/confstore/cmd/confstore/main.go
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/confstore"
	"github.com/lixenwraith/confstore/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the command line and returns the process exit code.
func run(args []string, out io.Writer) int {
	app := kingpin.New("confstore", "Inspect key = value configuration files")
	configFile := app.Flag("config", "Primary configuration file, loaded first").Short('c').String()
	dist := app.Flag("dist", "Load the primary file from <config>.dist").Bool()
	additional := app.Flag("add", "Additional configuration file merged after the primary one (repeatable)").Short('a').Strings()
	logLevel := app.Flag("log-level", "Log level").Default("warn").Enum("debug", "info", "warn", "error")
	logFormat := app.Flag("log-format", "Log output format").Default("console").Enum("console", "json")

	getCmd := app.Command("get", "Print one option, falling back to a default")
	getName := getCmd.Arg("name", "Option name").Required().String()
	getDefault := getCmd.Flag("default", "Default when the option is missing or invalid").Default("").String()
	getType := getCmd.Flag("type", "Type the option is read as").Default("string").Enum("string", "bool", "int", "float", "duration")

	keysCmd := app.Command("keys", "List option names starting with a prefix")
	keysPrefix := keysCmd.Arg("prefix", "Name prefix").Default("").String()

	dumpCmd := app.Command("dump", "Write all loaded options")
	dumpFormat := dumpCmd.Flag("format", "Output format").Default("conf").Enum("conf", "toml", "yaml", "yml", "json")

	checkCmd := app.Command("check", "Parse files without loading them and report problems")
	checkFiles := checkCmd.Arg("files", "Files to check").Required().ExistingFiles()

	app.Writer(out)
	command, err := app.Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "confstore: %v\n", err)
		return 2
	}

	logger, err := logging.New(*logLevel, *logFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "confstore: failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	if command == checkCmd.FullCommand() {
		return check(*checkFiles, logger, out)
	}

	builder := confstore.NewBuilder().
		WithLogger(logger).
		WithAdditionalFiles(*additional...)
	if *dist {
		builder.WithAppConfig(*configFile)
	} else {
		builder.WithFile(*configFile)
	}

	store, buildErr := builder.Build()
	if buildErr != nil {
		logger.Error("configuration incomplete", zap.Error(buildErr))
	}

	switch command {
	case getCmd.FullCommand():
		value, err := get(store, *getName, *getDefault, *getType)
		if err != nil {
			fmt.Fprintf(os.Stderr, "confstore: %v\n", err)
			return 2
		}
		fmt.Fprintln(out, value)

	case keysCmd.FullCommand():
		keys := store.KeysByPrefix(*keysPrefix)
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintln(out, key)
		}

	case dumpCmd.FullCommand():
		format, err := confstore.ParseFormat(*dumpFormat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "confstore: %v\n", err)
			return 2
		}
		if err := store.Export(out, format); err != nil {
			logger.Error("dump failed", zap.Error(err))
			return 1
		}
	}

	if buildErr != nil {
		return 1
	}
	return 0
}

// get reads name as the requested type.
func get(store *confstore.Store, name, def, typ string) (any, error) {
	switch typ {
	case "bool":
		return getAs[bool](store, name, def)
	case "int":
		return getAs[int64](store, name, def)
	case "float":
		return getAs[float64](store, name, def)
	case "duration":
		return getAs[time.Duration](store, name, def)
	}
	return store.String(name, def), nil
}

// getAs parses the default with the same rules as stored values, then
// looks name up as T.
func getAs[T confstore.Value](store *confstore.Store, name, def string) (T, error) {
	var d T
	if def != "" {
		if err := confstore.NewConverter().Convert(def, &d); err != nil {
			return d, fmt.Errorf("invalid default: %w", err)
		}
	}
	return confstore.Option(store, name, d), nil
}

// check parses each file on its own and reports how many options it holds.
func check(files []string, logger *zap.Logger, out io.Writer) int {
	code := 0
	for _, file := range files {
		options, err := confstore.ParseFile(file, logger)
		if err != nil {
			fmt.Fprintf(out, "%s: FAIL %v\n", file, err)
			code = 1
			continue
		}
		kind := "config"
		if confstore.IsAppConfig(file) {
			kind = "app config"
		}
		fmt.Fprintf(out, "%s: OK %d options (%s)\n", file, len(options), kind)
	}
	return code
}
