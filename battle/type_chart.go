package battle

// Attack type -> defending types it hits for double damage
var superEffective = map[PokemonType][]PokemonType{
	TYPE_FIRE:     {TYPE_GRASS, TYPE_ICE, TYPE_BUG, TYPE_STEEL},
	TYPE_WATER:    {TYPE_FIRE, TYPE_GROUND, TYPE_ROCK},
	TYPE_ELECTRIC: {TYPE_WATER, TYPE_FLYING},
	TYPE_GRASS:    {TYPE_WATER, TYPE_GROUND, TYPE_ROCK},
	TYPE_ICE:      {TYPE_GRASS, TYPE_GROUND, TYPE_FLYING, TYPE_DRAGON},
	TYPE_FIGHTING: {TYPE_NORMAL, TYPE_ICE, TYPE_ROCK, TYPE_DARK, TYPE_STEEL},
	TYPE_POISON:   {TYPE_GRASS, TYPE_FAIRY},
	TYPE_GROUND:   {TYPE_FIRE, TYPE_ELECTRIC, TYPE_POISON, TYPE_ROCK, TYPE_STEEL},
	TYPE_FLYING:   {TYPE_GRASS, TYPE_FIGHTING, TYPE_BUG},
	TYPE_PSYCHIC:  {TYPE_FIGHTING, TYPE_POISON},
	TYPE_BUG:      {TYPE_GRASS, TYPE_PSYCHIC, TYPE_DARK},
	TYPE_ROCK:     {TYPE_FIRE, TYPE_ICE, TYPE_FLYING, TYPE_BUG},
	TYPE_GHOST:    {TYPE_PSYCHIC, TYPE_GHOST},
	TYPE_DRAGON:   {TYPE_DRAGON},
	TYPE_DARK:     {TYPE_PSYCHIC, TYPE_GHOST},
	TYPE_STEEL:    {TYPE_ICE, TYPE_ROCK, TYPE_FAIRY},
	TYPE_FAIRY:    {TYPE_FIGHTING, TYPE_DRAGON, TYPE_DARK},
}

// Attack type -> defending types that resist it
var notVeryEffective = map[PokemonType][]PokemonType{
	TYPE_NORMAL:   {TYPE_ROCK, TYPE_STEEL},
	TYPE_FIRE:     {TYPE_FIRE, TYPE_WATER, TYPE_ROCK, TYPE_DRAGON},
	TYPE_WATER:    {TYPE_WATER, TYPE_GRASS, TYPE_DRAGON},
	TYPE_ELECTRIC: {TYPE_ELECTRIC, TYPE_GRASS, TYPE_DRAGON},
	TYPE_GRASS:    {TYPE_FIRE, TYPE_GRASS, TYPE_POISON, TYPE_FLYING, TYPE_BUG, TYPE_DRAGON, TYPE_STEEL},
	TYPE_ICE:      {TYPE_FIRE, TYPE_WATER, TYPE_ICE, TYPE_STEEL},
	TYPE_FIGHTING: {TYPE_POISON, TYPE_FLYING, TYPE_PSYCHIC, TYPE_BUG, TYPE_FAIRY},
	TYPE_POISON:   {TYPE_POISON, TYPE_GROUND, TYPE_ROCK, TYPE_GHOST},
	TYPE_GROUND:   {TYPE_GRASS, TYPE_BUG},
	TYPE_FLYING:   {TYPE_ELECTRIC, TYPE_ROCK, TYPE_STEEL},
	TYPE_PSYCHIC:  {TYPE_PSYCHIC, TYPE_STEEL},
	TYPE_BUG:      {TYPE_FIRE, TYPE_FIGHTING, TYPE_POISON, TYPE_FLYING, TYPE_GHOST, TYPE_STEEL, TYPE_FAIRY},
	TYPE_ROCK:     {TYPE_FIGHTING, TYPE_GROUND, TYPE_STEEL},
	TYPE_GHOST:    {TYPE_DARK},
	TYPE_DRAGON:   {TYPE_STEEL},
	TYPE_DARK:     {TYPE_FIGHTING, TYPE_DARK, TYPE_FAIRY},
	TYPE_STEEL:    {TYPE_FIRE, TYPE_WATER, TYPE_ELECTRIC, TYPE_STEEL},
	TYPE_FAIRY:    {TYPE_FIRE, TYPE_POISON, TYPE_STEEL},
}

var noEffect = map[PokemonType][]PokemonType{
	TYPE_NORMAL:   {TYPE_GHOST},
	TYPE_ELECTRIC: {TYPE_GROUND},
	TYPE_FIGHTING: {TYPE_GHOST},
	TYPE_POISON:   {TYPE_STEEL},
	TYPE_GROUND:   {TYPE_FLYING},
	TYPE_PSYCHIC:  {TYPE_DARK},
	TYPE_GHOST:    {TYPE_NORMAL},
	TYPE_DRAGON:   {TYPE_FAIRY},
}

func typeMultiplier(attackType PokemonType, defType PokemonType) float64 {
	if defType == TYPE_TYPELESS || defType == TYPE_STELLAR {
		return 1
	}

	for _, t := range noEffect[attackType] {
		if t == defType {
			return 0
		}
	}
	for _, t := range superEffective[attackType] {
		if t == defType {
			return 2
		}
	}
	for _, t := range notVeryEffective[attackType] {
		if t == defType {
			return 0.5
		}
	}

	return 1
}

// TypeEffectiveness returns the combined multiplier of an attacking type against a pair of defending types
func TypeEffectiveness(attackType PokemonType, defTypes [2]PokemonType) float64 {
	effectiveness := typeMultiplier(attackType, defTypes[0])
	if defTypes[1] != defTypes[0] {
		effectiveness *= typeMultiplier(attackType, defTypes[1])
	}

	return effectiveness
}
