// Package fuzztests houses Go fuzz harnesses for the front half of the
// pipeline (source -> lexer -> parser -> quote). They guard against panics,
// hangs and render/reparse drift on arbitrary inputs.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер, парсер
// и обратную печать.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.

package fuzztests
