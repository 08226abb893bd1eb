package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"rsyn/internal/ast"
	"rsyn/internal/diag"
	"rsyn/internal/source"
)

// ParseFilesResult содержит результат парсинга одного файла
type ParseFilesResult struct {
	Path   string        // путь, как он был передан
	FileID source.FileID // ID файла в общем FileSet
	Crate  *ast.Crate    // nil, если файл не загрузился
	Bag    *diag.Bag     // Диагностики
}

// ParseFiles парсит файлы параллельно в общем FileSet.
// Ошибка загрузки файла становится диагностикой IOLoadFileError, а не прерывает пакет.
func ParseFiles(ctx context.Context, files []string, maxDiagnostics, jobs int) (*source.FileSet, []ParseFilesResult, error) {
	fileSet := source.NewFileSet()
	results := make([]ParseFilesResult, len(files))
	if len(files) == 0 {
		return fileSet, results, nil
	}

	// FileSet не потокобезопасен на запись: грузим всё заранее
	loaded := make([]bool, len(files))
	for i, path := range files {
		results[i] = ParseFilesResult{Path: path, Bag: diag.NewBag(maxDiagnostics)}
		fileID, err := fileSet.Load(path)
		if err != nil {
			results[i].Bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+err.Error()))
			continue
		}
		results[i].FileID = fileID
		loaded[i] = true
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i := range files {
		if !loaded[i] {
			continue
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := parseFile(fileSet, fileSet.Get(results[i].FileID), maxDiagnostics)
			if err != nil {
				return err
			}
			// индекс i уникален для горутины, мьютекс не нужен
			results[i].Crate = res.Crate
			results[i].Bag = res.Bag
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
