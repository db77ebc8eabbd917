package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ouss-AGC/oama-plateform/internal/model"
)

// simulate drives a whole class through the student API against a running
// server: PIN validation, waiting-room joins and randomized submissions. It
// exists to rehearse the dashboard, exports and reports with plausible data.

type student struct {
	name      string
	grade     string
	matricule string
}

var class = []student{
	{"Ahmed Ben Ali", "Sdt", "2025001"},
	{"Sami Mansouri", "Sdt", "2025002"},
	{"Karim Zoughi", "Sdt", "2025003"},
	{"Mohamed Tounsi", "Caporal", "2025004"},
	{"Youssef Dridi", "Sdt", "2025005"},
	{"Omar Belhaj", "Sdt", "2025006"},
	{"Khaled Rezgui", "Sdt", "2025007"},
	{"Walid Jlassi", "Caporal", "2025008"},
	{"Nabil Fekih", "Sdt", "2025009"},
	{"Hassan Mebarki", "Sdt", "2025010"},
	{"Sofiane Amri", "Sdt", "2025011"},
	{"Riad Bouazizi", "Caporal", "2025012"},
	{"Mehdi Gharbi", "Sdt", "2025013"},
	{"Amine Saidi", "Sdt", "2025014"},
	{"Fares Khelifi", "Sdt", "2025015"},
	{"Hedi Baccouche", "Caporal", "2025016"},
	{"Bilel Trabelsi", "Sdt", "2025017"},
	{"Skander Hmani", "Sdt", "2025018"},
	{"Aymen Louati", "Sdt", "2025019"},
	{"Marwen Gafsi", "Caporal", "2025020"},
	{"Nizar Chebbi", "Sdt", "2025021"},
	{"Ramzi Oueslati", "Sdt", "2025022"},
	{"Zied Hammami", "Sdt", "2025023"},
	{"Maher Ayari", "Caporal", "2025024"},
	{"Lotfi Jaziri", "Sdt", "2025025"},
	{"Mourad Ben Salem", "Sdt", "2025026"},
	{"Anis Karray", "Sdt", "2025027"},
}

func main() {
	baseURL := flag.String("url", "http://localhost:3000", "server base URL")
	discipline := flag.String("discipline", "munitions", "discipline to simulate")
	className := flag.String("class", "LASM 3", "class name for the roster")
	pin := flag.String("pin", "", "session PIN (skip join phase when empty)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	client := &http.Client{Timeout: 10 * time.Second}

	questions, timeLimit, err := fetchQuizData(client, *baseURL, *discipline)
	if err != nil {
		log.Fatal().Err(err).Msg("chargement du questionnaire impossible")
	}
	log.Info().Int("questions", len(questions)).Int("timeLimit", timeLimit).Msg("questionnaire chargé")

	for _, st := range class {
		if *pin != "" {
			if err := join(client, *baseURL, *pin, st, *className); err != nil {
				log.Error().Err(err).Str("nom", st.name).Msg("inscription échouée")
				continue
			}
		}

		result := buildResult(st, *className, *discipline, questions, timeLimit)
		if err := submit(client, *baseURL, result); err != nil {
			log.Error().Err(err).Str("nom", st.name).Msg("soumission échouée")
			continue
		}
		log.Info().Str("nom", st.name).Float64("scoreOn20", result.ScoreOn20).Msg("résultat soumis")
	}

	log.Info().Int("effectif", len(class)).Msg("simulation terminée")
}

func fetchQuizData(client *http.Client, baseURL, discipline string) ([]model.Question, int, error) {
	resp, err := client.Get(fmt.Sprintf("%s/api/quiz-data/%s", baseURL, discipline))
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("quiz-data: HTTP %d", resp.StatusCode)
	}

	var body struct {
		Title     string           `json:"title"`
		TimeLimit int              `json:"timeLimit"`
		Questions []model.Question `json:"questions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, 0, err
	}
	return body.Questions, body.TimeLimit, nil
}

func join(client *http.Client, baseURL, pin string, st student, className string) error {
	if err := post(client, baseURL+"/api/validate-pin", model.ValidatePinRequest{Pin: pin}); err != nil {
		return err
	}
	return post(client, baseURL+"/api/join-session", model.JoinSessionRequest{
		Student: model.JoinStudent{
			Grade:     st.grade,
			Name:      st.name,
			ClassName: className,
			Matricule: st.matricule,
		},
	})
}

// buildResult draws a target score biased towards a pass and generates
// answers consistent with it, so per-question corrections look plausible.
func buildResult(st student, className, discipline string, questions []model.Question, timeLimit int) model.QuizResult {
	var target float64
	switch r := rand.Float64(); {
	case r < 0.1:
		target = 5 + rand.Float64()*5
	case r < 0.4:
		target = 10 + rand.Float64()*4
	default:
		target = 14 + rand.Float64()*5
	}

	answers := make([]*int, len(questions))
	correct := 0
	for i, q := range questions {
		if rand.Float64() < target/20 {
			v := q.CorrectAnswer
			answers[i] = &v
			correct++
		} else if rand.Float64() < 0.9 {
			v := (q.CorrectAnswer + 1 + rand.Intn(len(q.Options)-1)) % len(q.Options)
			answers[i] = &v
		}
		// else left unanswered
	}

	total := len(questions)
	scoreOn20 := float64(correct) / float64(total) * 20
	elapsed := timeLimit/4 + rand.Intn(timeLimit/2)

	return model.QuizResult{
		Student: model.Participant{
			Grade:     st.grade,
			Name:      st.name,
			ClassName: className,
			Matricule: st.matricule,
		},
		Discipline:     discipline,
		Answers:        answers,
		Score:          scoreOn20 * 5,
		ScoreOn20:      scoreOn20,
		CorrectCount:   correct,
		TotalQuestions: total,
		TimeElapsed:    elapsed,
		Timestamp:      time.Now().UnixMilli() - int64(rand.Intn(10_000_000)),
	}
}

func submit(client *http.Client, baseURL string, result model.QuizResult) error {
	return post(client, baseURL+"/api/submit-quiz", result)
}

func post(client *http.Client, url string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: HTTP %d", url, resp.StatusCode)
	}
	return nil
}
