package area

import "fmt"

// PrimaryID returns the primary slot identifier of image, or SlotDoesNotExist.
func PrimaryID(image int) ID {
	if image == 0 {
		return Image0Primary
	}
	return SlotDoesNotExist
}

// SecondaryID returns the secondary slot identifier of image, or SlotDoesNotExist.
func SecondaryID(image int) ID {
	if image == 0 {
		return Image0Secondary
	}
	return SlotDoesNotExist
}

// IDFromMultiImageSlot maps an (image, slot) pair to an area identifier.
//
// Slot 0 is primary and slot 1 secondary; only image 0 carries them. Slot 2
// is the scratch area for every image index.
func IDFromMultiImageSlot(image, slot int) (ID, error) {
	var id ID
	switch slot {
	case 0:
		id = PrimaryID(image)
	case 1:
		id = SecondaryID(image)
	case 2:
		return ImageScratch, nil
	default:
		id = SlotDoesNotExist
	}
	if id == SlotDoesNotExist {
		return 0, fmt.Errorf("%w: image %d slot %d", ErrInvalidSlot, image, slot)
	}
	return id, nil
}

// IDFromSlot is IDFromMultiImageSlot for image 0.
func IDFromSlot(slot int) (ID, error) {
	return IDFromMultiImageSlot(0, slot)
}
