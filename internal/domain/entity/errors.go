package entity

import "errors"

// Классы ошибок запуска. Все они завершают прогон без повторов.
var (
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrImageLoad        = errors.New("image load error")
	ErrImageWrite       = errors.New("image write error")
	ErrBackend          = errors.New("backend error")
)
