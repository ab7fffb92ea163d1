// Package batch 提供多文档并行校验
//
// 语料级场景（校验成千上万个 JSON 文档）下单个 Parser 串行吃不满
// CPU。Runner 用固定大小 goroutine 池分派任务，每个任务从
// ParserPool 取一个解析器独占使用，互不共享任何可变状态。
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/sync/errgroup"

	"github.com/uniyakcom/jot/tok"
	"github.com/uniyakcom/jot/util"
)

// Result 单个文档的校验结果
type Result struct {
	Doc    int    // 文档序号
	Path   string // 文件路径（仅 ValidateFiles 填写）
	Tokens uint32 // 校验成功时产出的 token 总数
	Err    error  // nil 表示合法 JSON
}

// Runner 并行校验执行器
//
// Close 之前可复用于任意多批文档。
type Runner struct {
	pool   *ants.Pool
	docs   *util.PerCPUCounter
	tokens *util.PerCPUCounter
}

// New 创建 Runner，workers <= 0 时取 CPU 核数
func New(workers int) (*Runner, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("batch: create pool: %w", err)
	}
	return &Runner{
		pool:   pool,
		docs:   util.NewPerCPUCounter(),
		tokens: util.NewPerCPUCounter(),
	}, nil
}

// Validate 并行校验一批文档，结果按输入顺序返回
//
// 每个任务写自己的结果槽位，无共享写竞争。
func (r *Runner) Validate(docs [][]byte) []Result {
	results := make([]Result, len(docs))
	var wg sync.WaitGroup

	for i := range docs {
		wg.Add(1)
		doc := docs[i]
		res := &results[i]
		res.Doc = i
		if err := r.pool.Submit(func() {
			defer wg.Done()
			p := tok.AcquireParser()
			res.Err = p.Parse(doc)
			if res.Err == nil {
				res.Tokens = p.Last()
				r.tokens.Add(int64(p.Last()))
			}
			r.docs.Add(1)
			tok.ReleaseParser(p)
		}); err != nil {
			wg.Done()
			res.Err = fmt.Errorf("batch: submit: %w", err)
		}
	}

	wg.Wait()
	return results
}

// Stats 返回累计处理的文档数与合法文档的 token 总数
func (r *Runner) Stats() (docs, tokens int64) {
	return r.docs.Read(), r.tokens.Read()
}

// Close 释放 goroutine 池（立即返回，不等待进行中的任务；需要等待
// 时用 Drain）
func (r *Runner) Close() {
	r.pool.Release()
}

// Drain 优雅关闭（等待任务完成或超时）
func (r *Runner) Drain(timeout time.Duration) error {
	if timeout <= 0 {
		r.Close()
		return nil
	}
	if err := r.pool.ReleaseTimeout(timeout); err != nil {
		return fmt.Errorf("batch: graceful close timed out after %v", timeout)
	}
	return nil
}

// ValidateFiles 并发读取并校验多个文件
//
// 语法错误记录在对应 Result 中，不中断整批；I/O 错误视为致命，
// 取消其余任务并作为整体错误返回。
func ValidateFiles(ctx context.Context, paths []string) ([]Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]Result, len(paths))
	for i, path := range paths {
		path := path
		res := &results[i]
		res.Doc = i
		res.Path = path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("batch: read %s: %w", path, err)
			}
			p := tok.AcquireParser()
			defer tok.ReleaseParser(p)
			res.Err = p.Parse(data)
			if res.Err == nil {
				res.Tokens = p.Last()
			}
			slog.Debug("batch: file validated",
				"path", path, "tokens", res.Tokens, "valid", res.Err == nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
