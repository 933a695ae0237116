package data

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DownloadItem is a downloadable file attached to an experience. Count is the
// number of times the file has been requested; it only ever grows.
type DownloadItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Filename string `json:"filename"`
	Count    int    `json:"count"`
}

type Comment struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Email  string `json:"email,omitempty"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

type Experience struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Type     string         `json:"type"`
	MediaURL string         `json:"mediaUrl"`
	Items    []DownloadItem `json:"items"`
	Comments []Comment      `json:"comments"`
}

// Catalog is the full experience collection plus the global guestbook for
// feedback not tied to a single experience.
type Catalog struct {
	Experiences []Experience `json:"experiences"`
	Guestbook   []Comment    `json:"guestbook"`
}

// AnonymousAuthor is used when a comment is submitted with a blank name.
const AnonymousAuthor = "Usuario"

// commentDateFormat matches the display format of the original site.
const commentDateFormat = "02/01/2006 15:04"

// NewComment builds a comment with a fresh time-ordered id and the current
// timestamp. Blank authors fall back to AnonymousAuthor; the text is trimmed
// but not otherwise validated here.
func NewComment(author, email, text string) Comment {
	author = strings.TrimSpace(author)
	if author == "" {
		author = AnonymousAuthor
	}
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return Comment{
		ID:     id.String(),
		Author: author,
		Email:  strings.TrimSpace(email),
		Text:   strings.TrimSpace(text),
		Date:   time.Now().Format(commentDateFormat),
	}
}

// SeedCatalog returns the fixed experience collection used when no snapshot
// exists yet. Counts start at zero and comment lists start empty.
func SeedCatalog() Catalog {
	return Catalog{
		Experiences: []Experience{
			{
				ID:       "exp1",
				Title:    "Experiencia 1: Lectura accesible con pictogramas",
				Type:     "video",
				MediaURL: "https://www.youtube.com/embed/exp1-lectura",
				Items: []DownloadItem{
					{ID: "guia", Label: "Guía didáctica", Filename: "exp1-guia.pdf"},
					{ID: "fichas", Label: "Fichas de trabajo", Filename: "exp1-fichas.pdf"},
					{ID: "pictogramas", Label: "Tablero de pictogramas", Filename: "exp1-pictogramas.pdf"},
				},
			},
			{
				ID:       "exp2",
				Title:    "Experiencia 2: Matemáticas manipulativas",
				Type:     "taller",
				MediaURL: "https://www.youtube.com/embed/exp2-matematicas",
				Items: []DownloadItem{
					{ID: "guia", Label: "Guía didáctica", Filename: "exp2-guia.pdf"},
					{ID: "material", Label: "Material imprimible", Filename: "exp2-material.pdf"},
				},
			},
			{
				ID:       "exp3",
				Title:    "Experiencia 3: Comunicación aumentativa en el aula",
				Type:     "video",
				MediaURL: "https://www.youtube.com/embed/exp3-caa",
				Items: []DownloadItem{
					{ID: "guia", Label: "Guía didáctica", Filename: "exp3-guia.pdf"},
					{ID: "plantillas", Label: "Plantillas de comunicación", Filename: "exp3-plantillas.pdf"},
					{ID: "evaluacion", Label: "Rúbrica de evaluación", Filename: "exp3-evaluacion.pdf"},
				},
			},
			{
				ID:       "exp4",
				Title:    "Experiencia 4: Sensibilización sobre discapacidad visual",
				Type:     "audio",
				MediaURL: "https://www.youtube.com/embed/exp4-vision",
				Items: []DownloadItem{
					{ID: "guia", Label: "Guía didáctica", Filename: "exp4-guia.pdf"},
					{ID: "audio", Label: "Audiodescripciones", Filename: "exp4-audio.zip"},
				},
			},
		},
	}
}
