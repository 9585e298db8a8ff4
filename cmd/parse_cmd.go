package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dzjyyds666/tq/parse"
	"github.com/dzjyyds666/tq/parse/toml"
	"github.com/dzjyyds666/tq/pkg"
)

type ParseParams struct {
	Find    string `json:"find"`    // 查找的key
	Input   string `json:"input"`   // 输入文件路径
	Output  string `json:"output"`  // 输出文件地址
	Strict  bool   `json:"strict"`  // 重复key报错
	Mixed   bool   `json:"mixed"`   // 允许混合类型数组
	Ordered bool   `json:"ordered"` // 保留key顺序
}

var params *ParseParams

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "parse a TOML document",
	Run:   parseRun,
}

func init() {
	params = &ParseParams{}
	parseCmd.Flags().StringVarP(&params.Find, "find", "f", "", "find")
	parseCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	parseCmd.Flags().StringVarP(&params.Output, "output", "o", "", "output path")
	parseCmd.Flags().BoolVar(&params.Strict, "strict", true, "fail on duplicate keys and table redefinitions")
	parseCmd.Flags().BoolVar(&params.Mixed, "mixed", false, "allow mixed-type arrays")
	parseCmd.Flags().BoolVar(&params.Ordered, "ordered", true, "preserve key order")
}

func parseRun(cmd *cobra.Command, args []string) {
	doc := loadDocument(params.Input, toml.Options{
		Strict:        params.Strict,
		MixedTypes:    params.Mixed,
		PreserveOrder: params.Ordered,
	})

	var out any = toml.ToUntyped(doc)
	if len(params.Find) > 0 {
		v, ok := parse.FindPath(doc, params.Find)
		if !ok {
			logger.Fatal().Msgf("key %s not found", params.Find)
		}
		out = v
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to encode result")
	}
	writeResult(params.Output, append(data, '\n'))
}

func loadDocument(input string, opts toml.Options) *toml.Table {
	if len(input) == 0 {
		logger.Fatal().Msg("no input file path")
	}
	exist, err := pkg.CheckFileExist(input)
	if err != nil {
		logger.Fatal().Err(err).Msg("check file exist error")
	}
	if !exist {
		logger.Fatal().Msg("input file not exist")
	}
	doc, err := parse.TomlFile(input, opts)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse input")
	}
	return doc
}

func writeResult(output string, data []byte) {
	if len(output) == 0 {
		fmt.Print(string(data))
		return
	}
	if err := pkg.WriteFile(output, data); err != nil {
		logger.Fatal().Err(err).Msg("failed to write output")
	}
}
