package equipment

// BasicEquipment is the catalog identity shared by every item
type BasicEquipment struct {
	Key    string  `json:"key"`
	Name   string  `json:"name"`
	Weight float32 `json:"weight"`
}

func (e *BasicEquipment) GetName() string { return e.Name }

func (e *BasicEquipment) GetKey() string { return e.Key }
