package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dzjyyds666/tq/parse/toml"
)

type FmtParams struct {
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址
}

var fmtParams *FmtParams

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "rewrite a TOML document in normalized form",
	Run:   fmtRun,
}

func init() {
	fmtParams = &FmtParams{}
	fmtCmd.Flags().StringVarP(&fmtParams.Input, "input", "i", "", "input file path")
	fmtCmd.Flags().StringVarP(&fmtParams.Output, "output", "o", "", "output path")
}

func fmtRun(cmd *cobra.Command, args []string) {
	doc := loadDocument(fmtParams.Input, toml.DefaultOptions())
	writeResult(fmtParams.Output, toml.Encode(doc))
}
