// SPDX-License-Identifier: Apache-2.0

// Command gs1cli is a thin demonstration front-end over the gs1 package:
// it decodes a scan-data string to its canonical AI element string, or
// encodes a canonical string back to scan data, depending on which flag
// is given.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gs1-syntax/engine-go"
	"github.com/gs1-syntax/engine-go/airegistry"
)

func main() {
	decode := flag.String("decode", "", "decode a raw scan-data string")
	encode := flag.String("encode", "", "encode a canonical data_str, together with -sym")
	sym := flag.String("sym", "", "symbology name required by -encode (e.g. QR, EAN13, DataBarExpanded)")
	permitUnknown := flag.Bool("permit-unknown-ais", false, "accept AIs this tool's registry does not recognise")
	flag.Parse()

	if (*decode == "") == (*encode == "") {
		log.Fatalf("Usage: %s -decode <scan-data> | -encode <data_str> -sym <symbology>\n", os.Args[0])
	}

	opts := []gs1.Option{gs1.WithAIProcessor(airegistry.Processor{})}
	if *permitUnknown {
		opts = append(opts, gs1.WithPermitUnknownAIs(true))
	}
	ctx := gs1.NewContext(opts...)

	if *decode != "" {
		runDecode(ctx, *decode)
		return
	}
	runEncode(ctx, *encode, *sym)
}

func runDecode(ctx *gs1.Context, scanData string) {
	if !gs1.ProcessScanData(ctx, scanData) {
		log.Fatalf("decode failed: %s", ctx.ErrMsg)
	}
	fmt.Printf("sym:      %s\n", ctx.Sym)
	fmt.Printf("data_str: %s\n", ctx.DataStr)
	if ctx.DLAIBuffer != "" {
		fmt.Printf("dl_ais:   %s\n", ctx.DLAIBuffer)
	}
	for _, ai := range ctx.AIData {
		fmt.Printf("  AI %s = %q\n", ai.AI, ai.Value)
	}
}

func runEncode(ctx *gs1.Context, dataStr, symName string) {
	sym, ok := symbologyByName(symName)
	if !ok {
		log.Fatalf("unknown symbology %q", symName)
	}
	ctx.Sym = sym
	ctx.DataStr = dataStr

	out, ok := gs1.GenerateScanData(ctx)
	if !ok {
		log.Fatalf("encode failed: %s", ctx.ErrMsg)
	}
	fmt.Println(out)
}

func symbologyByName(name string) (gs1.Symbology, bool) {
	table := map[string]gs1.Symbology{
		"EAN13":              gs1.SymEAN13,
		"EAN8":               gs1.SymEAN8,
		"UPCA":               gs1.SymUPCA,
		"UPCE":               gs1.SymUPCE,
		"GS1_128_CCA":        gs1.SymGS1_128_CCA,
		"GS1_128_CCC":        gs1.SymGS1_128_CCC,
		"DataBarOmni":        gs1.SymDataBarOmni,
		"DataBarTruncated":   gs1.SymDataBarTruncated,
		"DataBarStacked":     gs1.SymDataBarStacked,
		"DataBarStackedOmni": gs1.SymDataBarStackedOmni,
		"DataBarLimited":     gs1.SymDataBarLimited,
		"DataBarExpanded":    gs1.SymDataBarExpanded,
		"QR":                 gs1.SymQR,
		"DM":                 gs1.SymDM,
		"DotCode":            gs1.SymDotCode,
	}
	sym, ok := table[name]
	return sym, ok
}
