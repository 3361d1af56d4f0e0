package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentPostsSpanishPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/comments", r.URL.Path)
		var req CreateCommentDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "buen plan!", req.Contenido)
		assert.Equal(t, 5, req.PublicacionId)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 11,
			"contenido": "buen plan!",
			"fechaCreacion": "2024-06-01T09:00:00",
			"autorUsername": "bruno",
			"publicacionId": 5
		}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)

	comment, err := client.CreateComment(context.Background(), CreateCommentDTO{Contenido: "buen plan!", PublicacionId: 5})
	require.NoError(t, err)
	assert.Equal(t, 11, comment.Id)
	assert.Equal(t, "bruno", comment.AutorUsername)
}

func TestListCommentsByPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/comments/post/5", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 11, "contenido": "buen plan!", "autorUsername": "bruno", "publicacionId": 5},
			{"id": 12, "contenido": "gracias", "autorUsername": "ana", "publicacionId": 5}
		]`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)

	comments, err := client.ListComments(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "gracias", comments[1].Contenido)
}

func TestGoalsRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/goals/mine":
			w.Write([]byte(`[{
				"id": 3,
				"descripcion": "bajar 5kg",
				"fechaInicio": "2024-01-01",
				"fechaFin": "2024-06-01",
				"cumplida": true,
				"userId": 12
			}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/goals":
			var req CreateGoalDTO
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "correr 10k", req.Descripcion)
			w.Write([]byte(`{"id": 4, "descripcion": "correr 10k", "cumplida": false, "userId": 12}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)

	goals, err := client.ListMyGoals(context.Background())
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "bajar 5kg", goals[0].Descripcion)
	assert.True(t, goals[0].Cumplida)

	goal, err := client.CreateGoal(context.Background(), CreateGoalDTO{Descripcion: "correr 10k"})
	require.NoError(t, err)
	assert.Equal(t, 4, goal.Id)
	assert.False(t, goal.Cumplida)
}

func TestExercisesRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/exercises", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`[{
				"id": 1,
				"nombre": "Sentadilla",
				"grupoMuscular": "piernas",
				"series": 5,
				"repeticiones": 5,
				"descansoSegundos": 90,
				"pesoKg": 60
			}]`))
		case http.MethodPost:
			var req CreateExerciseDTO
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Peso muerto", req.Nombre)
			assert.Equal(t, 3, req.Series)
			w.Write([]byte(`{"id": 2, "nombre": "Peso muerto", "series": 3, "repeticiones": 8}`))
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)

	exercises, err := client.ListExercises(context.Background())
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "Sentadilla", exercises[0].Nombre)
	assert.Equal(t, 90, exercises[0].DescansoSegundos)

	created, err := client.CreateExercise(context.Background(), CreateExerciseDTO{Nombre: "Peso muerto", Series: 3, Repeticiones: 8})
	require.NoError(t, err)
	assert.Equal(t, 2, created.Id)
}
