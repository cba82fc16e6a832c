// Package region implements the fixed 125-node rental-region hierarchy.
package region

// NodeCount is the number of region nodes in the embedded hierarchy.
const NodeCount = 125

// RootID is the id of the hierarchy root ("European Union").
const RootID uint8 = 0


// topology is the fixed 125-node region hierarchy rooted at the European Union (id 0).
// Each entry lists the declared child ids in source order; it is a compile-time constant,
// never mutated at runtime.
var topology = [NodeCount][]uint8{
	0: {1, 2, 3, 4, 5, 6}, // European Union
	1: {7, 8, 9}, // Germany
	2: {10, 11}, // France
	3: {12, 13, 14}, // Italy
	4: {15, 16}, // Portugal
	5: {17, 18}, // Netherlands
	6: {19, 20}, // Belgium
	7: {21, 22, 23}, // Berlin
	8: {24, 25, 26, 27, 28}, // Munich
	9: {29, 30}, // Frankfurt
	10: {31, 32, 33, 34, 35}, // Paris
	11: {36, 37}, // Nice
	12: {38, 39}, // Rome
	13: {40, 41, 42}, // Milan
	14: {43, 44}, // Venice
	15: {45, 46}, // Lisbon
	16: {47, 48}, // Porto
	17: {49, 50}, // Amsterdam
	18: {51, 52}, // Rotterdam
	19: {53, 54, 55}, // Brussels
	20: {56, 57}, // Antwerp
	21: {58, 59}, // Mitte
	22: {60, 61}, // Kreuzberg
	23: {62, 63}, // Berlin Brandenburg Airport
	24: {64, 65}, // Maxvorstadt
	25: {66, 67}, // Neuhausen Nymphenburg
	26: {68, 69}, // Schwabing
	27: {70, 71}, // Old Town
	28: {72, 73}, // Munich Airport
	29: {74, 75}, // Sachsenhausen
	30: {76, 77}, // Frankfurt Airport
	31: {78, 79, 80, 81}, // Charles de Gaulle Airport
	32: {82, 83}, // Orly Airport
	33: {84, 85}, // 1st Arrondissement
	34: {86, 87}, // 7th Arrondissement
	35: {88, 89}, // Montmartre
	36: {90, 91}, // Nice Côte d'Azur Airport
	37: {92, 93}, // Old Town
	38: {94, 95}, // Leonardo da Vinci–Fiumicino Airport
	39: {96, 97}, // Centro Storico
	40: {98, 99}, // Malpensa Airport
	41: {100}, // Linate Airport
	42: {101, 102}, // Brera
	43: {103}, // Venice Marco Polo Airport
	44: {104, 105}, // San Marco
	45: {106, 107}, // Lisbon Airport
	46: {108, 109}, // Alfama
	47: {110, 111}, // Porto Airport
	48: {112, 113}, // Ribeira
	49: {114, 115}, // Amsterdam Airport Schiphol
	50: {116, 117}, // Jordaan
	51: {118}, // Rotterdam The Hague Airport
	52: {119, 120}, // Delfshaven
	53: {121}, // Brussels Airport
	54: {122}, // Brussels South Charleroi Airport
	55: {123, 124}, // European Quarter
	56: {}, // Antwerp Central Station
	57: {}, // Grote Markt
	58: {}, // Brandenburg Gate
	59: {}, // Berlin Cathedral
	60: {}, // East Side Gallery
	61: {}, // Checkpoint Charlie
	62: {}, // Terminal A
	63: {}, // Terminal B
	64: {}, // Oper Munich
	65: {}, // University of Munich
	66: {}, // Nymphenburg Palace
	67: {}, // CHECK24 Office
	68: {}, // English Garden
	69: {}, // Augustiner Brewery
	70: {}, // Viktualienmarkt
	71: {}, // Marienplatz
	72: {}, // Terminal 1
	73: {}, // Terminal 2
	74: {}, // Eiserner Steg
	75: {}, // Museum Embankment
	76: {}, // Terminal 1
	77: {}, // Terminal 2
	78: {}, // Terminal 1
	79: {}, // Terminal 2A
	80: {}, // Terminal 2B
	81: {}, // Terminal 2C
	82: {}, // Terminal South
	83: {}, // Terminal West
	84: {}, // Louvre
	85: {}, // Palais Royal
	86: {}, // Eiffel Tower
	87: {}, // Champ de Mars
	88: {}, // Sacré-Cœur Basilica
	89: {}, // Place du Tertre
	90: {}, // Terminal 1
	91: {}, // Terminal 2
	92: {}, // Promenade des Anglais
	93: {}, // Castle Hill
	94: {}, // Terminal 1
	95: {}, // Terminal 3
	96: {}, // Colosseum
	97: {}, // Pantheon
	98: {}, // Terminal 1
	99: {}, // Terminal 2
	100: {}, // Terminal 1
	101: {}, // Pinacoteca di Brera
	102: {}, // Brera Botanical Garden
	103: {}, // Terminal 1
	104: {}, // St. Mark's Basilica
	105: {}, // Doge's Palace
	106: {}, // Terminal 1
	107: {}, // Terminal 2
	108: {}, // São Jorge Castle
	109: {}, // Fado Museum
	110: {}, // Terminal 1
	111: {}, // Terminal 2
	112: {}, // Dom Luís I Bridge
	113: {}, // Clérigos Tower
	114: {}, // Terminal 1
	115: {}, // Terminal 2
	116: {}, // Anne Frank House
	117: {}, // Westerkerk
	118: {}, // Terminal 1
	119: {}, // Delfshaven Harbor
	120: {}, // Pilgrim Fathers Church
	121: {}, // Terminal 1
	122: {}, // Terminal 1
	123: {}, // European Commission
	124: {}, // Parc Leopold
}
