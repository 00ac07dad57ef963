package forms

type FuncionarioForm struct {
	Nombre       string `json:"nombre" binding:"required,min=3,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,password"`
	Secretaria   string `json:"secretaría" binding:"required,secretaria"`
	LineaTrabajo string `json:"linea_trabajo" binding:"required"`
	Rol          string `json:"rol" binding:"omitempty,rol"`
	Estado       string `json:"estado" binding:"omitempty,estado"`
	Telefono     string `json:"telefono" binding:"omitempty,telefono"`
}

type UpdateFuncionarioForm struct {
	Nombre       *string `json:"nombre" binding:"omitempty,min=3,max=100"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Password     *string `json:"password" binding:"omitempty,password" update:"-"`
	Secretaria   *string `json:"secretaría" binding:"omitempty,secretaria"`
	LineaTrabajo *string `json:"linea_trabajo" binding:"omitempty" update:"-"`
	Rol          *string `json:"rol" binding:"omitempty,rol"`
	Estado       *string `json:"estado" binding:"omitempty,estado"`
	Telefono     *string `json:"telefono" binding:"omitempty,telefono"`
}
