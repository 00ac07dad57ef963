package forms

type LoginForm struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type VerificacionForm struct {
	CredentialID     string                 `json:"credential_id" binding:"required"`
	PublicKey        string                 `json:"public_key" binding:"required"`
	TipoVerificacion string                 `json:"tipo_verificacion" binding:"required,oneof=huella_digital firma_digital"`
	Dispositivo      map[string]interface{} `json:"dispositivo"`
}
