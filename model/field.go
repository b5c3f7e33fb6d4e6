package model

import "fmt"

type FieldKind int

const (
	KindText FieldKind = iota
	KindNumber
	KindSelect
	KindTel
	KindEmail
	KindTextarea
	KindCheckbox
)

var fieldKindNames = map[FieldKind]string{
	KindText:     "text",
	KindNumber:   "number",
	KindSelect:   "select",
	KindTel:      "tel",
	KindEmail:    "email",
	KindTextarea: "textarea",
	KindCheckbox: "checkbox",
}

func (k FieldKind) String() string {
	if name, ok := fieldKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("FieldKind(%d)", int(k))
}

func (k FieldKind) MarshalText() ([]byte, error) {
	name, ok := fieldKindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown field kind %d", int(k))
	}
	return []byte(name), nil
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Field struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"type"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []Option  `json:"options,omitempty"`
	Min         int       `json:"min,omitempty"`
	Max         int       `json:"max,omitempty"`
}

type Step struct {
	Number int     `json:"number"`
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

var Steps = []Step{
	{
		Number: 1,
		Title:  "Participant Details",
		Fields: []Field{
			{Name: "fullName", Label: "Full Name", Kind: KindText, Required: true, Placeholder: "Enter your full name as it appears on ID"},
			{Name: "age", Label: "Age", Kind: KindNumber, Required: true, Placeholder: "Enter your age", Min: 1, Max: 25},
			{Name: "category", Label: "Category", Kind: KindSelect, Required: true, Options: []Option{
				{Value: "", Label: "Select Category"},
				{Value: "toddler", Label: "Toddler (1-5 years)"},
				{Value: "children_6_8", Label: "Children (6-8 years)"},
				{Value: "pre_teens", Label: "Pre-Teens (9-12 years)"},
				{Value: "teens", Label: "Teens (13-19 years)"},
				{Value: "super_teens", Label: "Super Teens"},
				{Value: "alumni", Label: "Alumni"},
				{Value: "teacher", Label: "Teacher/Volunteer"},
			}},
			{Name: "gender", Label: "Gender", Kind: KindSelect, Required: true, Options: []Option{
				{Value: "", Label: "Select Gender"},
				{Value: "male", Label: "Male"},
				{Value: "female", Label: "Female"},
			}},
			{Name: "phone", Label: "Phone Number", Kind: KindTel, Required: true, Placeholder: "+234 800 123 4567"},
			{Name: "email", Label: "Email Address", Kind: KindEmail, Required: true, Placeholder: "your.email@example.com"},
		},
	},
	{
		Number: 2,
		Title:  "Church Information",
		Fields: []Field{
			{Name: "province", Label: "Province", Kind: KindSelect, Required: true, Options: provinceOptions()},
			{Name: "zone", Label: "Zone", Kind: KindText, Required: true, Placeholder: "Enter your zone"},
			{Name: "area", Label: "Area", Kind: KindText, Required: true, Placeholder: "Enter your area"},
			{Name: "parish", Label: "Parish/Local Church", Kind: KindText, Required: true, Placeholder: "e.g., RCCG Jesus Palace Parish"},
			{Name: "department", Label: "Church Department", Kind: KindSelect, Options: []Option{
				{Value: "", Label: "Select Department"},
				{Value: "teens_church", Label: "Teens Church"},
				{Value: "children_church", Label: "Children Church"},
				{Value: "choir", Label: "Choir"},
				{Value: "media", Label: "Media"},
				{Value: "ushering", Label: "Ushering"},
				{Value: "protocol", Label: "Protocol"},
				{Value: "welfare", Label: "Welfare"},
				{Value: "prayer", Label: "Prayer Team"},
				{Value: "evangelism", Label: "Evangelism"},
				{Value: "none", Label: "Not in any department"},
			}},
		},
	},
	{
		Number: 3,
		Title:  "Medical & Emergency",
		Fields: []Field{
			{Name: "medicalConditions", Label: "Any Medical Conditions or Allergies?", Kind: KindTextarea, Placeholder: "List any allergies, medications, or health concerns we should know about"},
			{Name: "medications", Label: "Current Medications", Kind: KindTextarea, Placeholder: "List any medications you are currently taking"},
			{Name: "dietaryRestrictions", Label: "Dietary Restrictions", Kind: KindSelect, Options: []Option{
				{Value: "", Label: "Select if any"},
				{Value: "none", Label: "No restrictions"},
				{Value: "vegetarian", Label: "Vegetarian"},
				{Value: "allergies", Label: "Food Allergies"},
				{Value: "other", Label: "Other (specify in medical conditions)"},
			}},
			{Name: "emergencyContact", Label: "Emergency Contact Name", Kind: KindText, Required: true, Placeholder: "Full name of emergency contact"},
			{Name: "emergencyPhone", Label: "Emergency Contact Phone", Kind: KindTel, Required: true, Placeholder: "+234 800 123 4567"},
			{Name: "emergencyRelationship", Label: "Relationship with Emergency Contact", Kind: KindText, Required: true, Placeholder: "e.g., Mother, Father, Guardian"},
		},
	},
	{
		Number: 4,
		Title:  "Parent/Guardian Consent",
		Fields: []Field{
			{Name: "parentName", Label: "Parent/Guardian Full Name", Kind: KindText, Required: true, Placeholder: "Full name of parent or guardian"},
			{Name: "parentEmail", Label: "Parent/Guardian Email", Kind: KindEmail, Required: true, Placeholder: "parent.email@example.com"},
			{Name: "parentPhone", Label: "Parent/Guardian Phone", Kind: KindTel, Required: true, Placeholder: "+234 800 123 4567"},
			{Name: "parentRelationship", Label: "Relationship with Participant", Kind: KindSelect, Required: true, Options: []Option{
				{Value: "", Label: "Select Relationship"},
				{Value: "mother", Label: "Mother"},
				{Value: "father", Label: "Father"},
				{Value: "guardian", Label: "Guardian"},
				{Value: "sibling", Label: "Sibling"},
				{Value: "other", Label: "Other"},
			}},
			{Name: "parentConsent", Label: "I give consent for my child/ward to participate in all camp activities including physical exercises, games, and off-site activities", Kind: KindCheckbox, Required: true},
			{Name: "medicalConsent", Label: "I authorize the camp organizers to seek medical treatment for my child/ward in case of emergency if I cannot be reached", Kind: KindCheckbox, Required: true},
			{Name: "photoConsent", Label: "I consent to photos and videos of my child/ward being taken and used for camp promotional materials", Kind: KindCheckbox},
		},
	},
}

func provinceOptions() []Option {
	opts := []Option{{Value: "", Label: "Select Province"}}
	for i := 1; i <= 10; i++ {
		opts = append(opts, Option{Value: fmt.Sprintf("province_%d", i), Label: fmt.Sprintf("Province %d", i)})
	}
	return opts
}

// StepFields returns the field names of a wizard step, or nil for an unknown step.
func StepFields(step int) []string {
	for _, s := range Steps {
		if s.Number != step {
			continue
		}
		names := make([]string, 0, len(s.Fields))
		for _, f := range s.Fields {
			names = append(names, f.Name)
		}
		return names
	}
	return nil
}

// LookupField finds the descriptor of a form field by name.
func LookupField(name string) (Field, bool) {
	for _, s := range Steps {
		for _, f := range s.Fields {
			if f.Name == name {
				return f, true
			}
		}
	}
	return Field{}, false
}
