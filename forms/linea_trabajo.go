package forms

type LineaTrabajoForm struct {
	Nombre      string `json:"nombre" binding:"required,min=2,max=100,letras"`
	Descripcion string `json:"descripcion" binding:"max=500"`
	Estado      string `json:"estado" binding:"omitempty,estado"`
	Responsable string `json:"responsable" binding:"max=100"`
}

type UpdateLineaTrabajoForm struct {
	Nombre      *string `json:"nombre" binding:"omitempty,min=2,max=100,letras"`
	Descripcion *string `json:"descripcion" binding:"omitempty,max=500"`
	Estado      *string `json:"estado" binding:"omitempty,estado"`
	Responsable *string `json:"responsable" binding:"omitempty,max=100"`
}
