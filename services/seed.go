package services

import (
	"github.com/CPU-commits/RedInclusion/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Creates the first admin when none exists
func SeedAdmin() error {
	count, err := funcionarioModel.Count(bson.D{{Key: "rol", Value: models.ADMIN}})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, errRes := hashPassword(settingsData.ADMIN_PASSWORD)
	if errRes != nil {
		return errRes
	}
	admin := &models.Funcionario{
		Nombre:        "Administrador",
		Email:         settingsData.ADMIN_EMAIL,
		PasswordHash:  hash,
		Secretaria:    models.Secretarias[0],
		Rol:           models.ADMIN,
		Estado:        models.ACTIVO,
		FechaRegistro: primitive.NewDateTimeFromTime(timeNow()),
	}
	if _, err := funcionarioModel.NewDocument(admin); err != nil {
		return err
	}
	zap.L().Info("admin user created", zap.String("email", admin.Email))
	return nil
}
