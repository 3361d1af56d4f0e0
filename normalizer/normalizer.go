// Package normalizer converts the backend's heterogeneous Spanish-named
// DTOs into the canonical tagged-union Post shape. It does not promise any
// output ordering; ordering is the feed engine's job.
package normalizer

import (
	"time"

	"github.com/araddon/dateparse"

	"github.com/eliseodavidv/proyectocompleto/api"
	"github.com/eliseodavidv/proyectocompleto/model"
)

const (
	// AnonymousAuthor is rendered when the server omits the author.
	AnonymousAuthor = "Anonymous"

	// DegradedBody marks a post whose detail fetch failed during fan-out.
	DegradedBody = "content unavailable"
)

// parseCreatedAt tolerates the inconsistent timestamp formats the backend
// emits across endpoints. Unparseable or absent timestamps fall back to now.
func parseCreatedAt(raw string) time.Time {
	if len(raw) == 0 {
		return time.Now()
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Now()
	}
	return t
}

func author(raw string) string {
	if len(raw) == 0 {
		return AnonymousAuthor
	}
	return raw
}

func FromFoodPlan(d api.FoodPlanDTO) model.Post {
	return model.Post{
		Id:        d.Id,
		Kind:      model.KindFoodPlan,
		Title:     d.Titulo,
		Body:      d.Contenido,
		CreatedAt: parseCreatedAt(d.FechaCreacion),
		Author:    author(d.Autor),
		AuthorId:  d.UserId,
		Verified:  d.Verificada,
		FoodPlan: &model.FoodPlanFields{
			DietType:     d.TipoDieta,
			Calories:     d.Calorias,
			Objectives:   d.Objetivos,
			Restrictions: d.Restricciones,
		},
	}
}

func FromRoutine(d api.RoutineDTO) model.Post {
	exercises := make([]model.Exercise, 0, len(d.Ejercicios))
	for _, e := range d.Ejercicios {
		exercises = append(exercises, FromExercise(e))
	}
	return model.Post{
		Id:        d.Id,
		Kind:      model.KindRoutine,
		Title:     d.Titulo,
		Body:      d.Contenido,
		CreatedAt: parseCreatedAt(d.FechaCreacion),
		Author:    author(d.Autor),
		AuthorId:  d.UserId,
		Verified:  d.Verificada,
		Routine: &model.RoutineFields{
			RoutineName:     d.NombreRutina,
			DurationMinutes: d.Duracion,
			Frequency:       d.Frecuencia,
			Level:           d.Nivel,
			Exercises:       exercises,
		},
	}
}

// FromProgress maps a progress publication. Progress posts carry no content
// field in some backend versions, the Body stays empty in that case.
func FromProgress(d api.ProgressDTO) model.Post {
	return model.Post{
		Id:        d.Id,
		Kind:      model.KindProgress,
		Title:     d.Titulo,
		Body:      d.Contenido,
		CreatedAt: parseCreatedAt(d.FechaCreacion),
		Author:    author(d.Autor),
		AuthorId:  d.UserId,
		Verified:  d.Verificada,
		Progress: &model.ProgressFields{
			StartDate:     parseCreatedAt(d.FechaInicio),
			EndDate:       parseCreatedAt(d.FechaFin),
			StartWeight:   d.PesoInicio,
			EndWeight:     d.PesoFin,
			AverageWeight: d.PromedioPeso,
			WeightDelta:   d.CambioPeso,
		},
	}
}

// FromShared maps the shared-to-group copy of a publication. It keeps the
// shared publication's numeric id and gets the shared flag, so it never
// collides with the original in a merged feed.
func FromShared(d api.SharedPublicationDTO) model.Post {
	return model.Post{
		Id:        d.PublicacionId,
		Kind:      model.KindSharedPublication,
		Title:     d.PublicacionTitulo,
		Body:      d.PublicacionContenido,
		CreatedAt: parseCreatedAt(d.FechaCompartida),
		Author:    author(d.Autor),
		Shared:    true,
		SharedBy:  d.CompartidoPor,
		GroupId:   d.GrupoId,
		SharedAt:  parseCreatedAt(d.FechaCompartida),
	}
}

func FromExercise(d api.ExerciseDTO) model.Exercise {
	return model.Exercise{
		Id:          d.Id,
		Name:        d.Nombre,
		Description: d.Descripcion,
		MuscleGroup: d.GrupoMuscular,
		Sets:        d.Series,
		Reps:        d.Repeticiones,
		RestSeconds: d.DescansoSegundos,
		WeightKg:    d.PesoKg,
		ImageUrl:    d.ImagenUrl,
	}
}

func FromComment(d api.CommentDTO) model.Comment {
	return model.Comment{
		Id:        d.Id,
		PostId:    d.PublicacionId,
		Content:   d.Contenido,
		Author:    author(d.AutorUsername),
		CreatedAt: parseCreatedAt(d.FechaCreacion),
	}
}

func FromGroup(d api.GroupDTO) model.Group {
	members := make([]model.Member, 0, len(d.Miembros))
	for _, m := range d.Miembros {
		members = append(members, model.Member{Id: m.Id, Name: m.Nombre})
	}
	group := model.Group{
		Id:          d.Id,
		Name:        d.Nombre,
		Description: d.Descripcion,
		Visibility:  visibilityFromTipo(d.Tipo),
		Members:     members,
		Admin:       model.Member{Id: d.Administrador.Id, Name: d.Administrador.Nombre},
		CreatedAt:   parseCreatedAt(d.FechaCreacion),
	}
	// The admin is always a member. Some backend responses omit the admin
	// from the member list, patch it back to keep the invariant.
	if !group.IsMember(group.Admin.Id) {
		group.Members = append(group.Members, group.Admin)
	}
	return group
}

func FromGoal(d api.GoalDTO) model.Goal {
	return model.Goal{
		Id:          d.Id,
		Description: d.Descripcion,
		StartDate:   parseCreatedAt(d.FechaInicio),
		EndDate:     parseCreatedAt(d.FechaFin),
		Achieved:    d.Cumplida,
		UserId:      d.UserId,
	}
}

func visibilityFromTipo(tipo string) model.Visibility {
	switch tipo {
	case "PUBLICO", "PUBLIC":
		return model.VisibilityPublic
	}
	return model.VisibilityPrivate
}
