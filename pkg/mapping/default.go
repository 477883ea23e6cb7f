package mapping

import "github.com/evanschultz/medcase-visualizer/pkg/models"

// DefaultTable returns the built-in clinical term table. Organ names follow
// the mesh naming of the bundled body model.
func DefaultTable() *Table {
	t := &Table{}

	t.MustRegister(`abdominal pain`,
		hl("06_Abdomen", "#FF6347", "Abdominal Pain (Abdomen)"),
		hl("07_Lower_abdomen", "#FF6347", "Abdominal Pain (Lower Abdomen)"),
	)
	t.MustRegister(`large bowel obstruction|cecal volvulus`,
		hl("06_Abdomen", "#FFA500", "Bowel Obstruction (Abdomen Area)"),
		hl("07_Lower_abdomen", "#FFA500", "Bowel Obstruction (Lower Abdomen Area)"),
	)
	t.MustRegister(`necrotic gut`,
		hl("06_Abdomen", "#8B0000", "Necrotic Gut (Abdomen Area)"),
		hl("07_Lower_abdomen", "#8B0000", "Necrotic Gut (Lower Abdomen Area)"),
	)
	t.MustRegister(`respiratory distress`,
		hl("05_Chest", "#1E90FF", "Respiratory Distress (Chest Area)"),
	)
	t.MustRegister(`right nephrectomy`,
		hl("21_Lower_back", "#A9A9A9", "Right Nephrectomy (Lower Back/Kidney Area)"),
	)
	t.MustRegister(`headache`,
		hl("01_Scalp", "#FFEB3B", "Headache (Scalp)"),
		hl("SA_01_FOREHEAD", "#FFEB3B", "Headache (Forehead)"),
		hl("SA_02_TEMPLES", "#FFEB3B", "Headache (Temples)"),
	)
	t.MustRegister(`facial injury|face trauma`,
		hl("02_Face", "#E91E63", "Facial Injury"),
		hl("SA_10_CHEEKS", "#E91E63", "Facial Injury (Cheeks)"),
		hl("SA_13_JAW", "#E91E63", "Facial Injury (Jaw)"),
	)
	t.MustRegister(`arm injury`,
		hl("10_Upper_arms", "#9C27B0", "Arm Injury (Upper Arms)"),
		hl("12_Fore_arms", "#9C27B0", "Arm Injury (Forearms)"),
		hl("11_Elbows", "#9C27B0", "Arm Injury (Elbows)"),
		hl("13_Hand_back", "#9C27B0", "Arm Injury (Back of Hand)"),
		hl("14_Hand_palms", "#9C27B0", "Arm Injury (Palm of Hand)"),
	)
	t.MustRegister(`leg pain|leg injury`,
		hl("15_Thighs", "#00BCD4", "Leg Issue (Thighs)"),
		hl("17_Legs", "#00BCD4", "Leg Issue (Lower Legs)"),
		hl("16_Knees", "#00BCD4", "Leg Issue (Knees)"),
	)
	t.MustRegister(`back pain`,
		hl("20_Back", "#4CAF50", "Back Pain (Upper/Mid Back)"),
		hl("21_Lower_back", "#4CAF50", "Back Pain (Lower Back)"),
	)

	return t
}

func hl(organ, color, description string) models.OrganHighlight {
	return models.OrganHighlight{OrganName: organ, Color: color, Description: description}
}
