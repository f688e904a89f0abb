package domain

// Category is an age-bracket competition label derived from an athlete's
// birth year. It is stored denormalized on the athlete row and recomputed
// on every write.
type Category string

const (
	Sub13  Category = "Sub13"
	Sub15  Category = "Sub15"
	Sub17  Category = "Sub17"
	Sub19  Category = "Sub19"
	Sub21  Category = "Sub21"
	Sub23  Category = "Sub23"
	Adulto Category = "Adulto"
)

// Categories is the fixed dashboard ordering, youngest bracket first.
var Categories = []Category{Sub13, Sub15, Sub17, Sub19, Sub21, Sub23, Adulto}

type Athlete struct {
	ID            int64    `db:"id" json:"id"`
	Name          string   `db:"nome" json:"nome"`
	BirthDate     string   `db:"nascimento" json:"nascimento"` // YYYY-MM-DD
	Height        string   `db:"altura" json:"altura"`
	Address       string   `db:"endereco" json:"endereco"`
	Phone         string   `db:"telefone" json:"telefone"`
	GuardianName  string   `db:"responsavel" json:"responsavel"`
	GuardianPhone string   `db:"telefone_responsavel" json:"telefone_responsavel"`
	School        string   `db:"escola" json:"escola"`
	Club          string   `db:"clube" json:"clube"`
	TrainingKit   string   `db:"padrao_treino" json:"padrao_treino"`
	GameKit       string   `db:"padrao_jogo" json:"padrao_jogo"`
	ShirtColor    string   `db:"camisa" json:"camisa"`
	ShirtNumber   string   `db:"numero" json:"numero"`
	Category      Category `db:"sub" json:"sub"`
}

type Competition struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"nome" json:"nome"`
	Date       string `db:"data" json:"data"` // YYYY-MM-DD
	Categories string `db:"subs" json:"subs"` // free text, e.g. "Sub15, Sub17"
	Location   string `db:"local" json:"local"`
}

// Enrollment links an athlete to a competition. The table exists in the
// schema but no use case populates it yet.
type Enrollment struct {
	ID            int64 `db:"id" json:"id"`
	AthleteID     int64 `db:"atleta_id" json:"atleta_id"`
	CompetitionID int64 `db:"competicao_id" json:"competicao_id"`
}
