package bits

// CRC8Poly is x^8 + x^2 + x + 1.
const CRC8Poly = 0x07

type CRC8Checker struct {
	Poly uint8
	crc  uint8
}

func (c *CRC8Checker) poly() uint8 {
	if c.Poly == 0 {
		return CRC8Poly
	}
	return c.Poly
}

func (c *CRC8Checker) Reset() {
	c.crc = 0
}

func (c *CRC8Checker) Update(b byte) {
	c.crc ^= b
	for k := 0; k < 8; k++ {
		if c.crc&0x80 != 0 {
			c.crc = (c.crc << 1) ^ c.poly()
		} else {
			c.crc <<= 1
		}
	}
}

func (c *CRC8Checker) Get() uint8 {
	return c.crc
}

// CRC8 is the checksum of data with the default polynomial.
func CRC8(data []byte) uint8 {
	var c CRC8Checker
	for _, b := range data {
		c.Update(b)
	}
	return c.Get()
}
