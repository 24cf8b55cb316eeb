package errors

import (
	"fmt"
)

type ErrUnknownKey struct {
	Key string
}

func (e *ErrUnknownKey) Error() string {
	return "неизвестный ключ: " + e.Key
}

func (e *ErrUnknownKey) Is(target error) bool {
	_, ok := target.(*ErrUnknownKey)
	return ok
}

type ErrInvalidValue struct {
	FieldName string
	Value     string
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("некорректное значение '%s' для поля '%s'", e.Value, e.FieldName)
}

func (e *ErrInvalidValue) Is(target error) bool {
	_, ok := target.(*ErrInvalidValue)
	return ok
}

type ErrMissingRequiredField struct {
	FieldName string
}

func (e *ErrMissingRequiredField) Error() string {
	return fmt.Sprintf("отсутствует обязательное поле: %s", e.FieldName)
}

func (e *ErrMissingRequiredField) Is(target error) bool {
	_, ok := target.(*ErrMissingRequiredField)
	return ok
}

type ErrRuleAlreadyExists struct {
	Name string
}

func (e *ErrRuleAlreadyExists) Error() string {
	return "реакция уже существует: " + e.Name
}

func (e *ErrRuleAlreadyExists) Is(target error) bool {
	_, ok := target.(*ErrRuleAlreadyExists)
	return ok
}

type ErrRuleNotFound struct {
	Name string
}

func (e *ErrRuleNotFound) Error() string {
	return "реакция не найдена: " + e.Name
}

func (e *ErrRuleNotFound) Is(target error) bool {
	_, ok := target.(*ErrRuleNotFound)
	return ok
}

type ErrMalformedFooter struct {
	Footer string
}

func (e *ErrMalformedFooter) Error() string {
	return fmt.Sprintf("некорректная подпись страницы: '%s'", e.Footer)
}

func (e *ErrMalformedFooter) Is(target error) bool {
	_, ok := target.(*ErrMalformedFooter)
	return ok
}

type ErrEmptyPagination struct{}

func (e *ErrEmptyPagination) Error() string {
	return "нет страниц для перелистывания"
}

type ErrPersistence struct {
	Operation string
	Path      string
	Cause     error
}

func (e *ErrPersistence) Error() string {
	return fmt.Sprintf("ошибка хранилища реакций при %s (%s): %v", e.Operation, e.Path, e.Cause)
}

func (e *ErrPersistence) Unwrap() error {
	return e.Cause
}

func (e *ErrPersistence) Is(target error) bool {
	_, ok := target.(*ErrPersistence)
	return ok
}

const (
	OpLoadRules = "load_rules"
	OpSaveRules = "save_rules"
)

type ErrPermissionDenied struct {
	UserID int64
}

func (e *ErrPermissionDenied) Error() string {
	return fmt.Sprintf("недостаточно прав у пользователя %d", e.UserID)
}

func (e *ErrPermissionDenied) Is(target error) bool {
	_, ok := target.(*ErrPermissionDenied)
	return ok
}

type ErrUnknownCommand struct {
	Command string
}

func (e *ErrUnknownCommand) Error() string {
	return "неизвестная команда: " + e.Command
}
