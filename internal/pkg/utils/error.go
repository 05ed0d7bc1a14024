package utils

import "github.com/Kredible-Inc/kredible-lending/internal/pkg/models"

func GetErrorCode(err error) string {
	if customErr, ok := err.(*models.CustomError); ok {
		return customErr.ErrorCode()
	}
	return "KREDIBLE_LENDING_INTERNAL_ERROR"
}
