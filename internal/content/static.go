package content

import (
	"context"
	"fmt"

	"github.com/oriolmontal/lingodrill/internal/challenge"
)

// Static serves challenges from a built-in bank. It backs offline play and
// tests; the bank is small and cycles when more challenges are requested
// than it holds.
type Static struct {
	bank map[challenge.Type][]Payload
}

// NewStatic creates a provider over the built-in bank.
func NewStatic() *Static {
	return &Static{bank: builtinBank}
}

func (s *Static) Fetch(ctx context.Context, params FetchParams) ([]challenge.Challenge, error) {
	if params.Count <= 0 {
		return nil, &ErrContentUnavailable{Params: params, Err: fmt.Errorf("invalid count %d", params.Count)}
	}

	entries := s.bank[params.Type]
	if len(entries) == 0 {
		return nil, &ErrContentUnavailable{Params: params, Err: fmt.Errorf("no built-in content for type %q", params.Type)}
	}

	out := make([]challenge.Challenge, 0, params.Count)
	for i := 0; i < params.Count; i++ {
		p := entries[i%len(entries)]
		payload, err := encodePayload(p)
		if err != nil {
			return nil, &ErrContentUnavailable{Params: params, Err: err}
		}
		out = append(out, challenge.Challenge{
			// Stable IDs so completion tracking works across repeats.
			ID:       fmt.Sprintf("static-%s-%s-%d", params.Type, params.Language, i%len(entries)),
			Type:     params.Type,
			Language: params.Language,
			Level:    params.Level,
			Payload:  payload,
		})
	}
	return out, nil
}

var builtinBank = map[challenge.Type][]Payload{
	challenge.TypeMicroQuiz: {
		{
			Prompt:      "Which word means 'the book' in Spanish?",
			Options:     []string{"el libro", "la libra", "el lobo", "la libre"},
			Answer:      "el libro",
			Explanation: "'Libro' is book; 'el' is the masculine article.",
		},
		{
			Prompt:      "Pick the correct conjugation: 'Yo ___ café todas las mañanas.'",
			Options:     []string{"bebo", "bebes", "bebe", "beben"},
			Answer:      "bebo",
			Explanation: "First person singular of 'beber' is 'bebo'.",
		},
		{
			Prompt:      "Which is the plural of 'la ciudad'?",
			Options:     []string{"las ciudades", "las ciudads", "los ciudades", "la ciudades"},
			Answer:      "las ciudades",
			Explanation: "Nouns ending in a consonant add '-es'.",
		},
	},
	challenge.TypeErrorSpotting: {
		{
			Prompt:      "Find the error: 'Ella es muy cansada hoy.'",
			Options:     []string{"Ella", "es", "muy", "hoy"},
			Answer:      "es",
			Explanation: "Temporary states take 'estar': 'Ella está muy cansada hoy.'",
		},
		{
			Prompt:      "Find the error: 'Me gusta los perros.'",
			Options:     []string{"Me", "gusta", "los", "perros"},
			Answer:      "gusta",
			Explanation: "Plural subject needs 'gustan': 'Me gustan los perros.'",
		},
	},
	challenge.TypeSmartFlashcard: {
		{
			Prompt: "la manzana",
			Answer: "the apple",
		},
		{
			Prompt: "el desayuno",
			Answer: "the breakfast",
		},
		{
			Prompt: "aprender",
			Answer: "to learn",
		},
	},
	challenge.TypeSwipeFix: {
		{
			Prompt:      "'Tengo veinte años.'",
			Options:     []string{"correct", "Soy veinte años."},
			Answer:      "correct",
			Explanation: "Age uses 'tener', so the sentence is right as written.",
		},
		{
			Prompt:      "'Estoy un estudiante.'",
			Options:     []string{"correct", "Soy un estudiante."},
			Answer:      "Soy un estudiante.",
			Explanation: "Professions and roles take 'ser', not 'estar'.",
		},
	},
	challenge.TypeNativeCheck: {
		{
			Prompt:      "Which would a native speaker say for 'I'm hungry'?",
			Options:     []string{"Tengo hambre", "Estoy hambre", "Soy hambriento", "Hago hambre"},
			Answer:      "Tengo hambre",
			Explanation: "Hunger is expressed with 'tener hambre'.",
		},
	},
	challenge.TypeBrainTickler: {
		{
			Prompt:      "Oro parece, plata no es. ¿Qué es?",
			Options:     []string{"el plátano", "el anillo", "la moneda", "la estrella"},
			Answer:      "el plátano",
			Explanation: "The riddle hides the answer: 'plata-no-es' sounds like 'plátano'.",
		},
		{
			Prompt:      "Blanca por dentro, verde por fuera. Si quieres que te lo diga, espera. ¿Qué es?",
			Options:     []string{"la pera", "la manzana", "el limón", "la lechuga"},
			Answer:      "la pera",
			Explanation: "'Espera' hides 'es pera' — it is a pear.",
		},
	},
	challenge.TypeStoryBuilder: {
		{
			Prompt:      "Marta corrió hasta el andén, pero llegó tarde. El tren ___.",
			Options:     []string{"ya había salido", "ya ha saliendo", "saldrá ayer", "ya saliera"},
			Answer:      "ya había salido",
			Explanation: "A past action before another past action takes the pluperfect.",
		},
		{
			Prompt:      "Hacía muchísimo frío aquella noche. Por eso ___.",
			Options:     []string{"nos quedamos en casa", "nos quedaremos anoche", "quedar en casa nosotros", "os quedáis en casa"},
			Answer:      "nos quedamos en casa",
			Explanation: "'Por eso' introduces the consequence, in the same past tense.",
		},
	},
}
