package enum

// Validator resolves material and sound names from configuration values.
type Validator struct {
	materials *Catalog[Material]
	sounds    *Catalog[Sound]
}

// NewValidator returns a Validator over the given catalogs. Nil catalogs fall
// back to the built-in Materials and Sounds.
func NewValidator(materials *Catalog[Material], sounds *Catalog[Sound]) *Validator {
	if materials == nil {
		materials = Materials
	}
	if sounds == nil {
		sounds = Sounds
	}
	return &Validator{materials: materials, sounds: sounds}
}

// Material returns the material named name, if it exists.
func (v *Validator) Material(name string) (Material, bool) {
	return v.materials.Lookup(name)
}

// Sound returns the sound named name, if it exists.
func (v *Validator) Sound(name string) (Sound, bool) {
	return v.sounds.Lookup(name)
}

// Materials returns the material catalog in use.
func (v *Validator) Materials() *Catalog[Material] { return v.materials }

// Sounds returns the sound catalog in use.
func (v *Validator) Sounds() *Catalog[Sound] { return v.sounds }
