package forms

type ComunaForm struct {
	Nombre string `json:"nombre" binding:"required,max=100"`
	Zona   string `json:"zona" binding:"required,max=100"`
}

type UpdateComunaForm struct {
	Nombre *string `json:"nombre" binding:"omitempty,min=1,max=100"`
	Zona   *string `json:"zona" binding:"omitempty,min=1,max=100"`
}
