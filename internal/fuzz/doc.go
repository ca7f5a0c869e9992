// Package fuzztests holds Go fuzz harnesses for the front end
// (source -> lexer -> parser). They look for panics, hangs and broken spans
// on arbitrary input.
//
// Не делает: генерацию корпусов, запуск CLI.
package fuzztests
