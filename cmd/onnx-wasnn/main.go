// onnx-wasnn converts an ONNX model to the wasnn model format.
//
// Usage:
//
//	onnx-wasnn [flags] <model.onnx> <output.wasnn>
//
// With -hf-repo, the input is a file name inside the given HuggingFace repository, downloaded
// (and cached) before conversion. Set HF_TOKEN to access private repositories.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gomlx/go-huggingface/hub"
	"github.com/wasnn/onnx-wasnn/onnx"
	"k8s.io/klog/v2"
)

var (
	flagPrint       = flag.Bool("print", false, "Print a summary of the ONNX model and of the converted graph.")
	flagHFRepo      = flag.String("hf-repo", "", "HuggingFace repository (e.g. \"KnightsAnalytics/all-MiniLM-L6-v2\") to download the input model from.")
	flagDisableMmap = flag.Bool("disable-mmap", false, "Read external tensor data with plain file reads instead of memory-mapping.")
)

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <model.onnx> <output.wasnn>\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(flag.Arg(0), flag.Arg(1)); err != nil {
		klog.Errorf("Failed to convert %s: %+v", flag.Arg(0), err)
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func run(inputPath, outputPath string) error {
	if *flagHFRepo != "" {
		repo := hub.New(*flagHFRepo).WithAuth(os.Getenv("HF_TOKEN"))
		localPath, err := repo.DownloadFile(inputPath)
		if err != nil {
			return err
		}
		inputPath = localPath
	}

	opts := onnx.ConvertOptions{
		Diagnostics: onnx.NewDiagnostics(),
		DisableMmap: *flagDisableMmap,
	}
	if !*flagPrint {
		return onnx.ConvertFile(inputPath, outputPath, opts)
	}

	model, err := onnx.ReadFile(inputPath)
	if err != nil {
		return err
	}
	fmt.Println(model)
	graph, err := model.Convert(opts)
	if err != nil {
		return err
	}
	fmt.Println(graph)
	buf, err := graph.Serialize()
	if err != nil {
		return err
	}
	return onnx.WriteFile(outputPath, buf)
}
