package domain

import (
	"fmt"

	"github.com/kestrelpoint/funddesk-backend/internal/result"
)

// NotFound builds the standard missing-entity error for the given entity
// name, e.g. "Fund.NotFound".
func NotFound(entity string) *result.Error {
	return result.NewError(
		entity+".NotFound",
		fmt.Sprintf("The %s with the specified identifier was not found.", entity))
}

// Conflict builds the standard duplicate-entity error, e.g. "Fund.Conflict".
func Conflict(entity string) *result.Error {
	return result.NewError(
		entity+".Conflict",
		fmt.Sprintf("The %s with the specified identifier already exists.", entity))
}

// ServerError wraps an unexpected storage failure, embedding the underlying
// driver message.
func ServerError(entity, message string) *result.Error {
	return result.NewError(
		entity+".ServerError",
		"An unexpected error occurred while processing the request. "+message)
}

var (
	ErrValidation = result.NewError(
		"General.ValidationError",
		"One or more validation errors occurred.")

	ErrUnauthorized = result.NewError(
		"General.Unauthorized",
		"You are not authorized to perform this action.")

	ErrForbidden = result.NewError(
		"General.Forbidden",
		"You do not have permission to perform this action.")

	ErrNameRequired = result.NewError(
		"Contact.NameRequired",
		"The contact name is required.")

	ErrNameTooLong = result.NewError(
		"Contact.NameTooLong",
		"The contact name exceeds the maximum allowed length.")

	ErrInvalidEmail = result.NewError(
		"Contact.InvalidEmail",
		"The provided email address is not valid.")

	ErrInvalidPhoneNumber = result.NewError(
		"Contact.InvalidPhoneNumber",
		"The provided phone number is not valid.")

	ErrContactCannotDelete = result.NewError(
		"Contact.CannotDelete",
		"The contact cannot be deleted because it is assigned to one or more funds.")

	ErrFundCannotDelete = result.NewError(
		"Fund.CannotDelete",
		"The fund cannot be deleted because it has one or more assigned contacts.")
)
