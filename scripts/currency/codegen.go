// Command codegen regenerates the ISO 4217 currency table of the money package.
//
// Paths can be set with flags or with MONEYGEN_DATA, MONEYGEN_TEMPLATE and
// MONEYGEN_OUTPUT environment variables.
package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type currency struct {
	Name  string
	Code  string
	Num   string
	Scale int
}

type config struct {
	Data     string `mapstructure:"data"`
	Template string `mapstructure:"template"`
	Output   string `mapstructure:"output"`
	Verbose  bool   `mapstructure:"verbose"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:          "codegen",
		Short:        "Generate currency_data.go from the ISO 4217 table",
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			var cfg config
			if err := v.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("failed to unmarshal config: %w", err)
			}
			log, err := newLogger(cfg.Verbose)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer func() { _ = log.Sync() }()
			return run(cfg, log)
		},
	}

	flags := cmd.Flags()
	flags.String("data", filepath.Join("scripts", "currency", "currency_data.csv"), "ISO 4217 CSV file")
	flags.String("template", filepath.Join("scripts", "currency", "currency_data.tmpl"), "Go template file")
	flags.String("output", "currency_data.go", "generated Go file")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	v.SetEnvPrefix("MONEYGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func run(cfg config, log *zap.Logger) error {
	// Read the ISO table
	data, err := readCsvFile(cfg.Data)
	if err != nil {
		log.Error("reading CSV file", zap.String("file", cfg.Data), zap.Error(err))
		return err
	}
	log.Debug("read currency records", zap.Int("count", len(data)))

	currs, err := convertDataToCurrencies(data)
	if err != nil {
		log.Error("converting records", zap.Error(err))
		return err
	}

	code, err := generateGoCode(cfg.Template, currs)
	if err != nil {
		log.Error("generating Go code", zap.String("template", cfg.Template), zap.Error(err))
		return err
	}

	if err := writeToFile(cfg.Output, code); err != nil {
		log.Error("writing to file", zap.String("file", cfg.Output), zap.Error(err))
		return err
	}
	log.Info("currency table generated",
		zap.String("output", cfg.Output),
		zap.Int("currencies", len(currs)),
	)
	return nil
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

func convertDataToCurrencies(data [][]string) ([]currency, error) {
	for i, rec := range data {
		if len(rec) != 4 {
			return nil, fmt.Errorf("record %v: want 4 fields, got %v", i, len(rec))
		}
	}
	sort.Slice(data, func(i, j int) bool {
		return data[i][1] < data[j][1]
	})

	currs := make([]currency, 0, len(data))
	seen := make(map[string]bool, len(data))
	for i, rec := range data {
		if rec[1] == "" {
			return nil, fmt.Errorf("record %v: empty currency code", i)
		}
		if seen[rec[1]] {
			return nil, fmt.Errorf("record %v: duplicate currency %q", i, rec[1])
		}
		seen[rec[1]] = true
		scale, err := strconv.Atoi(rec[3])
		if err != nil || scale < 0 {
			return nil, fmt.Errorf("record %v: invalid scale %q", i, rec[3])
		}
		currs = append(currs, currency{
			Name:  rec[0],
			Code:  rec[1],
			Num:   rec[2],
			Scale: scale,
		})
	}
	return currs, nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}

	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	if _, err = writer.Write(content); err != nil {
		return err
	}
	return writer.Flush()
}
