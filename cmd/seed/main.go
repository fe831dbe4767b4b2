package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// seedQuestion описывает стартовый вопрос
type seedQuestion struct {
	text       string
	answer     string
	categoryID int
	difficulty int
}

// Стартовый набор вопросов по одному-два на категорию
var seedQuestions = []seedQuestion{
	{"What boxer's original name is Cassius Clay?", "Muhammad Ali", 6, 1},
	{"What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", "Apollo 13", 5, 4},
	{"What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", "Tom Cruise", 5, 4},
	{"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 4, 2},
	{"What is the heaviest organ in the human body?", "The Liver", 1, 4},
	{"Who discovered penicillin?", "Alexander Fleming", 1, 3},
	{"What is the largest lake in Africa?", "Lake Victoria", 3, 2},
	{"In which royal palace would you find the Hall of Mirrors?", "The Palace of Versailles", 3, 3},
	{"La Giaconda is better known as what?", "Mona Lisa", 2, 3},
	{"Which Dutch graphic artist was initialed M.C.?", "Escher", 2, 1},
	{"Which country won the first ever soccer World Cup in 1930?", "Uruguay", 6, 4},
	{"Who invented Peanut Butter?", "George Washington Carver", 4, 2},
}

func main() {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		envOr("DATABASE_HOST", "localhost"),
		envOr("DATABASE_PORT", "5432"),
		envOr("DATABASE_USER", "postgres"),
		envOr("DATABASE_PASSWORD", ""),
		envOr("DATABASE_DBNAME", "trivia"),
		envOr("DATABASE_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal(err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Применяем миграции...")
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// Вставляем стартовые вопросы. Повторный запуск ничего не дублирует:
	// вопрос с уже существующим текстом пропускается.
	inserted := 0
	for _, q := range seedQuestions {
		res, err := db.Exec(`
			INSERT INTO questions (question, answer, category_id, difficulty)
			SELECT $1, $2, $3, $4
			WHERE NOT EXISTS (SELECT 1 FROM questions WHERE question = $1)
		`, q.text, q.answer, q.categoryID, q.difficulty)
		if err != nil {
			log.Fatalf("Failed to seed question %q: %v", q.text, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	fmt.Printf("Готово: добавлено %d новых вопросов из %d.\n", inserted, len(seedQuestions))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
