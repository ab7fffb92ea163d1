// jot 命令行工具: 校验 JSON 文件，可选打印层级树与统计
//
//	jot file.json             校验单个文件
//	jot -tree file.json       校验并打印层级树
//	jot -stats file.json      校验并打印各类型 token 统计
//	jot a.json b.json ...     并行校验多个文件
//
// 任一文件非法时退出码为 1。
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/uniyakcom/jot"
	"github.com/uniyakcom/jot/batch"
)

var (
	showTree  = flag.Bool("tree", false, "display the JSON hierarchy")
	showStats = flag.Bool("stats", false, "display per-kind token statistics")
	quiet     = flag.Bool("quiet", false, "suppress per-file output, exit code only")
)

func main() {
	flag.Parse()
	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [-tree] [-stats] [-quiet] file...\n", os.Args[0])
		os.Exit(2)
	}

	// 多文件且无显示需求时走并行批量路径
	if len(paths) > 1 && !*showTree && !*showStats {
		os.Exit(runBatch(paths))
	}
	os.Exit(runSerial(paths))
}

func runSerial(paths []string) int {
	exit := 0
	p := jot.New()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("read failed", "path", path, "err", err)
			exit = 1
			continue
		}
		if err := p.Parse(data); err != nil {
			exit = 1
			if !*quiet {
				fmt.Printf("%s: %v\n", path, err)
			}
			continue
		}
		if !*quiet {
			fmt.Printf("%s: valid, %d tokens\n", path, p.Last())
		}
		if *showTree {
			printTree(p)
		}
		if *showStats {
			printStats(p)
		}
	}
	return exit
}

func runBatch(paths []string) int {
	results, err := batch.ValidateFiles(context.Background(), paths)
	if err != nil {
		slog.Error("batch validation aborted", "err", err)
		return 1
	}
	exit := 0
	for _, r := range results {
		if r.Err != nil {
			exit = 1
			if !*quiet {
				fmt.Printf("%s: %v\n", r.Path, r.Err)
			}
			continue
		}
		if !*quiet {
			fmt.Printf("%s: valid, %d tokens\n", r.Path, r.Tokens)
		}
	}
	return exit
}
