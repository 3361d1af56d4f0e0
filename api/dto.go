package api

// Wire DTOs. The backend speaks Spanish field names with inconsistent
// casing across endpoints; the normalizer package maps these into the
// canonical model shapes.

type PublicationBaseDTO struct {
	Id            int    `json:"id"`
	Titulo        string `json:"titulo"`
	Contenido     string `json:"contenido"`
	FechaCreacion string `json:"fechaCreacion"`
	Autor         string `json:"autor"`
	Verificada    bool   `json:"verificada"`
}

type FoodPlanDTO struct {
	PublicationBaseDTO
	TipoDieta     string `json:"tipoDieta"`
	Calorias      int    `json:"calorias"`
	Objetivos     string `json:"objetivos"`
	Restricciones string `json:"restricciones"`
	UserId        int    `json:"userId"`
}

type RoutineDTO struct {
	PublicationBaseDTO
	NombreRutina string        `json:"nombreRutina"`
	Duracion     int           `json:"duracion"`
	Frecuencia   string        `json:"frecuencia"`
	Nivel        string        `json:"nivel"`
	UserId       int           `json:"userId"`
	Ejercicios   []ExerciseDTO `json:"ejercicios"`
}

type ProgressDTO struct {
	PublicationBaseDTO
	FechaInicio  string  `json:"fechaInicio"`
	FechaFin     string  `json:"fechaFin"`
	PesoInicio   float64 `json:"pesoInicio"`
	PesoFin      float64 `json:"pesoFin"`
	PromedioPeso float64 `json:"promedioPeso"`
	CambioPeso   float64 `json:"cambioPeso"`
	UserId       int     `json:"userId"`
}

type ExerciseDTO struct {
	Id               int     `json:"id"`
	Nombre           string  `json:"nombre"`
	Descripcion      string  `json:"descripcion"`
	GrupoMuscular    string  `json:"grupoMuscular"`
	Series           int     `json:"series"`
	Repeticiones     int     `json:"repeticiones"`
	DescansoSegundos int     `json:"descansoSegundos"`
	PesoKg           float64 `json:"pesoKg"`
	ImagenUrl        string  `json:"imagenUrl,omitempty"`
}

// SharedPublicationDTO is the shared-to-group copy of a publication. It
// carries a flattened snapshot of the shared publication, not a reference.
type SharedPublicationDTO struct {
	Id                   int    `json:"id"`
	GrupoId              int    `json:"grupoId"`
	GrupoNombre          string `json:"grupoNombre"`
	PublicacionId        int    `json:"publicacionId"`
	PublicacionTitulo    string `json:"publicacionTitulo"`
	PublicacionContenido string `json:"publicacionContenido"`
	Autor                string `json:"autor"`
	CompartidoPor        string `json:"compartidoPor"`
	FechaCompartida      string `json:"fechaCompartida"`
}

// PostSummaryDTO is what listing endpoints like /posts/mine return: just
// enough to render a row. Full content needs a per-id follow-up fetch.
type PostSummaryDTO struct {
	Id     int    `json:"id"`
	Titulo string `json:"titulo"`
	Autor  string `json:"autor"`
	Tipo   string `json:"tipo"`
}

type MemberDTO struct {
	Id     int    `json:"id"`
	Nombre string `json:"nombre"`
}

type GroupDTO struct {
	Id            int         `json:"id"`
	Nombre        string      `json:"nombre"`
	Descripcion   string      `json:"descripcion"`
	Tipo          string      `json:"tipo"` // PUBLICO | PRIVADO
	Miembros      []MemberDTO `json:"miembros"`
	Administrador MemberDTO   `json:"administrador"`
	FechaCreacion string      `json:"fechaCreacion"`
}

type CommentDTO struct {
	Id            int    `json:"id"`
	Contenido     string `json:"contenido"`
	FechaCreacion string `json:"fechaCreacion"`
	AutorUsername string `json:"autorUsername"`
	PublicacionId int    `json:"publicacionId"`
}

type GoalDTO struct {
	Id          int    `json:"id"`
	Descripcion string `json:"descripcion"`
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`
	Cumplida    bool   `json:"cumplida"`
	UserId      int    `json:"userId"`
}

// Creation payloads. The server assigns id, author and creation time.

type CreateFoodPlanDTO struct {
	Titulo        string `json:"titulo"`
	Contenido     string `json:"contenido"`
	TipoDieta     string `json:"tipoDieta"`
	Calorias      int    `json:"calorias"`
	Objetivos     string `json:"objetivos"`
	Restricciones string `json:"restricciones"`
}

type CreateRoutineDTO struct {
	Titulo       string `json:"titulo"`
	Descripcion  string `json:"descripcion"`
	NombreRutina string `json:"nombreRutina"`
	Duracion     int    `json:"duracion"`
	Frecuencia   string `json:"frecuencia"`
	Dificultad   string `json:"dificultad"`
	EjercicioIds []int  `json:"ejercicioIds"`
}

type CreateProgressDTO struct {
	Titulo      string  `json:"titulo"`
	Contenido   string  `json:"contenido"`
	FechaInicio string  `json:"fechaInicio"`
	FechaFin    string  `json:"fechaFin"`
	PesoInicio  float64 `json:"pesoInicio"`
	PesoFin     float64 `json:"pesoFin"`
}

type CreateExerciseDTO struct {
	Nombre           string  `json:"nombre"`
	Descripcion      string  `json:"descripcion"`
	Series           int     `json:"series"`
	Repeticiones     int     `json:"repeticiones"`
	DescansoSegundos int     `json:"descansoSegundos"`
	PesoKg           float64 `json:"pesoKg"`
	ImagenUrl        string  `json:"imagenUrl,omitempty"`
}

type CreateGroupDTO struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Tipo        string `json:"tipo"`
}

type CreateCommentDTO struct {
	Contenido     string `json:"contenido"`
	PublicacionId int    `json:"publicacionId"`
}

type CreateGoalDTO struct {
	Descripcion string `json:"descripcion"`
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`
}

// Auth payloads.

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token  string `json:"token"`
	Id     int    `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}
