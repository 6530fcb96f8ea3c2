package math

/**
 * @brief Represents the transform of an object in the world.
 * Transforms can have a parent whose own transform is then
 * taken into account. The local matrix is rebuilt lazily whenever
 * the position, rotation or scale changed since it was last read.
 *
 * A Transform is not safe for concurrent use.
 */
type Transform struct {
	position Vec3
	rotation Quaternion
	scale    Vec3
	// dirty marks local as stale.
	dirty  bool
	local  Mat4
	parent *Transform
}

func NewTransform() *Transform {
	return NewTransformFromPositionRotationScale(NewVec3Zero(), NewQuatIdentity(), NewVec3One())
}

func NewTransformFromPosition(position Vec3) *Transform {
	return NewTransformFromPositionRotationScale(position, NewQuatIdentity(), NewVec3One())
}

func NewTransformFromRotation(rotation Quaternion) *Transform {
	return NewTransformFromPositionRotationScale(NewVec3Zero(), rotation, NewVec3One())
}

func NewTransformFromPositionRotation(position Vec3, rotation Quaternion) *Transform {
	return NewTransformFromPositionRotationScale(position, rotation, NewVec3One())
}

func NewTransformFromPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) *Transform {
	t := &Transform{local: NewMat4Identity()}
	t.SetPositionRotationScale(position, rotation, scale)
	return t
}

func (t *Transform) Position() Vec3       { return t.position }
func (t *Transform) Rotation() Quaternion { return t.rotation }
func (t *Transform) Scale() Vec3          { return t.scale }
func (t *Transform) Parent() *Transform   { return t.parent }
func (t *Transform) IsDirty() bool        { return t.dirty }

// SetParent attaches t below parent. A nil parent detaches it.
func (t *Transform) SetParent(parent *Transform) {
	t.parent = parent
}

func (t *Transform) SetPosition(position Vec3) {
	t.position = position
	t.dirty = true
}

func (t *Transform) Translate(translation Vec3) {
	t.position = t.position.Add(translation)
	t.dirty = true
}

func (t *Transform) SetRotation(rotation Quaternion) {
	t.rotation = rotation
	t.dirty = true
}

// Rotate applies rotation after the current rotation.
func (t *Transform) Rotate(rotation Quaternion) {
	t.rotation = rotation.Mul(t.rotation).Normalize()
	t.dirty = true
}

func (t *Transform) SetScale(scale Vec3) {
	t.scale = scale
	t.dirty = true
}

// ScaleBy multiplies the current scale component-wise.
func (t *Transform) ScaleBy(scale Vec3) {
	t.scale = t.scale.Mul(scale)
	t.dirty = true
}

func (t *Transform) SetPositionRotation(position Vec3, rotation Quaternion) {
	t.position = position
	t.rotation = rotation
	t.dirty = true
}

func (t *Transform) SetPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) {
	t.position = position
	t.rotation = rotation
	t.scale = scale
	t.dirty = true
}

func (t *Transform) TranslateRotate(translation Vec3, rotation Quaternion) {
	t.Translate(translation)
	t.Rotate(rotation)
}

/**
 * @brief Returns the local matrix: scale, then rotation, then translation.
 * A nil transform is the identity.
 */
func (t *Transform) Local() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	if t.dirty {
		t.local = NewMat4FromTRS(t.position, t.rotation, t.scale)
		t.dirty = false
	}
	return t.local
}

/**
 * @brief Returns the world matrix, the local matrix followed by every
 * parent's world matrix.
 */
func (t *Transform) World() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	l := t.Local()
	if t.parent != nil {
		return l.Mul(t.parent.World())
	}
	return l
}
