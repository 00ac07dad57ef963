package forms

type AsignacionForm struct {
	BeneficiarioID string `json:"beneficiario_id" binding:"required"`
	LineaTrabajoID string `json:"linea_trabajo_id" binding:"required"`
	Estado         string `json:"estado" binding:"omitempty,estadoAsignacion"`
	Observaciones  string `json:"observaciones" binding:"max=500"`
}

type UpdateAsignacionForm struct {
	Estado        *string `json:"estado" binding:"omitempty,estadoAsignacion"`
	Observaciones *string `json:"observaciones" binding:"omitempty,max=500"`
}
