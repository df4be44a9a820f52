package classifier

import "regexp"

// Category names, in strict priority order. The order is load-bearing: a
// comment matching two categories takes the earlier one (a price mention
// beats a character mention), so rules must never be reordered or merged.
const (
	catAvailability  = "Disponibilidad y Puntos de Venta"
	catPrice         = "Precio y Costo"
	catCollection    = "Colección y Completitud"
	catInfoRequest   = "Solicitud de Información"
	catPositive      = "Opinión Positiva sobre los JojoMochis"
	catCharacters    = "Personajes Favoritos"
	catComparison    = "Comparación con Colecciones Anteriores"
	catProblems      = "Problemas con el Producto"
	catContests      = "Sorteos y Concursos"
	catCommunityMgr  = "Interacción con Community Manager"
	catGiftRequests  = "Solicitudes de Productos"
	catProductTraits = "Características del Producto"
	catNoise         = "Fuera de Tema / Spam"
)

type rule struct {
	category string
	pattern  *regexp.Regexp
	// maxTokens > 0 restricts the rule to comments with at most that many
	// whitespace-separated tokens.
	maxTokens int
}

// ruleTable is the fixed, ordered rule set for the JojoMochis campaign.
// Patterns are evaluated against the lowercased comment; first match wins.
var ruleTable = []rule{
	{
		category: catAvailability,
		pattern: regexp.MustCompile(
			`d[oó]nde|dónde se consiguen|d[oó]nde los puedo|d[oó]nde se encuentran|` +
				`no los encuentro|no han llegado|no llega|no venden|no hay|` +
				`mi tienda|mi pueblo|mi cerro|barrio|guaviare|cali|cartagena|ecuador|` +
				`punto de venta|[oó]xxo|env[ií]a|tiendita|mercanc[ií]a|surtido|` +
				`cu[aá]ndo llegan|cu[aá]ndo salen|ya salieron|todav[ií]a no`),
	},
	{
		category: catPrice,
		pattern: regexp.MustCompile(
			`precio|cu[aá]nto|caro|barato|vale|cobran|` +
				`2\.?000|3\.?000|3\.?500|4\.?000|bajenle el precio|` +
				`millonarios|garra|vendedor`),
	},
	{
		category: catCollection,
		pattern: regexp.MustCompile(
			`colecci[oó]n|completar|completa|todos los|falt[aóo]|` +
				`no he terminado|repetidos|conseguí|cu[aá]ntos son|` +
				`cu[aá]ntos motivos|apenas|solo tengo|tengo \d+|` +
				`primera edici[oó]n|todas las colecciones`),
	},
	{
		category: catInfoRequest,
		pattern: regexp.MustCompile(
			`nombres|listado|lista|cu[aá]les son|parte 2|` +
				`muestra|muestren|ense[ñn]a|video|` +
				`tarjeta|identificar|vienen con`),
	},
	{
		category: catPositive,
		pattern: regexp.MustCompile(
			`lindos|hermosos|divinos|bellos|tiernos|amo|encanta|` +
				`me gusta|adoro|quiero todos|los necesito|feliz|` +
				`mejor|✨|❤|💕|🎄`),
	},
	{
		category: catCharacters,
		pattern: regexp.MustCompile(
			`lucerita|estrella|pepetin[ao]|renny|elfo|ciervito|` +
				`guirnalda|bota|favorito|m[aá]s quería`),
	},
	{
		category: catComparison,
		pattern: regexp.MustCompile(
			`mochisaurios|ilumimochis|mochizippis|mini ilumimochis|` +
				`primeros|originales|dinosaurios|dino|antes|anterior|` +
				`despu[eé]s de|primera colección|acuamochis|animals`),
	},
	{
		category: catProblems,
		pattern: regexp.MustCompile(
			`da[ñn]|feo|mal pintado|sin|no tiene|se aplasta|` +
				`no alumbran|sin carita|sin la tirita|perdi|` +
				`robar|problema|no viene`),
	},
	{
		category: catContests,
		pattern: regexp.MustCompile(
			`ganador|sorteo|cajas|cajitas|concurso|gan[eé]|` +
				`cu[aá]ndo anuncian|qui[eé]n gan[oó]|prontooo`),
	},
	{
		category: catCommunityMgr,
		pattern: regexp.MustCompile(
			`gaby|gabi|gabyy|mejor practicante|contenido|` +
				`ya te sigo|siguenos|suscr|apoyen`),
	},
	{
		category: catGiftRequests,
		pattern: regexp.MustCompile(
			`regalame|reg[aá]lame|env[ií]a|manda|paquete gratis|` +
				`alpina dame|quiero para mi casa|me los llevas`),
	},
	{
		category: catProductTraits,
		pattern: regexp.MustCompile(
			`silicona|estirable|hilo|colgar|pl[aá]stico|` +
				`calendario de adviento|[aá]rbol|decorar`),
	},
	{
		category:  catNoise,
		pattern:   regexp.MustCompile(`aaaaaaa+|hola a aaaa|jajaja+|❤️|✨|plis|pliss|porfa+`),
		maxTokens: fillerMaxTokens,
	},
}

// noiseTokens are single-word acknowledgments treated as noise even when
// the length fallback would not catch them.
var noiseTokens = map[string]struct{}{
	"si": {},
	"no": {},
	"ok": {},
	"a":  {},
	"k":  {},
	"★":  {},
}
