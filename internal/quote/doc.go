// Package quote turns syntax trees and Go values into token trees and
// renders them back to text.
//
// Назначение: каноническая токенизация каждой сущности ast, шаблоны с
// подстановкой (#name, #( ... ) sep *) и однострочный текстовый вывод.
// Не делает: pretty-print с отступами, IO.
// Зависимости: internal/ast, internal/token, internal/parser (разбор шаблона).
package quote
